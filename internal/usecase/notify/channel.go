// Package notify fans newly scraped articles out to notification channels
// without blocking the scrape run.
package notify

import (
	"context"

	"news-website/internal/domain/entity"
	"news-website/internal/infra/notifier"
)

// Channel is one delivery target. Send must be safe for concurrent use.
type Channel interface {
	Name() string
	IsEnabled() bool
	Send(ctx context.Context, article *entity.Article) error
}

// NotifierChannel adapts an infra notifier to Channel.
type NotifierChannel struct {
	name     string
	notifier notifier.Notifier
	enabled  bool
}

// NewDiscordChannel is disabled when the webhook URL is empty.
func NewDiscordChannel(cfg notifier.DiscordConfig) *NotifierChannel {
	if cfg.WebhookURL == "" {
		return &NotifierChannel{name: "discord", notifier: notifier.NewNoOpNotifier()}
	}
	return &NotifierChannel{name: "discord", notifier: notifier.NewDiscordNotifier(cfg), enabled: true}
}

// NewChannel wraps an arbitrary notifier.
func NewChannel(name string, n notifier.Notifier) *NotifierChannel {
	return &NotifierChannel{name: name, notifier: n, enabled: n != nil}
}

func (c *NotifierChannel) Name() string    { return c.name }
func (c *NotifierChannel) IsEnabled() bool { return c.enabled }

func (c *NotifierChannel) Send(ctx context.Context, article *entity.Article) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if article == nil || article.Title == "" {
		return ErrInvalidArticle
	}
	return c.notifier.NotifyArticle(ctx, article)
}
