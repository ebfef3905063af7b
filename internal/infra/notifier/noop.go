package notifier

import (
	"context"

	"news-website/internal/domain/entity"
)

// NoOpNotifier is used when no webhook is configured.
type NoOpNotifier struct{}

func NewNoOpNotifier() *NoOpNotifier { return &NoOpNotifier{} }

func (n *NoOpNotifier) NotifyArticle(context.Context, *entity.Article) error { return nil }
