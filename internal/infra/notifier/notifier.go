// Package notifier delivers "new article" messages to chat webhooks.
package notifier

import (
	"context"

	"news-website/internal/domain/entity"
)

// Notifier sends one notification for a freshly scraped article.
// Implementations apply their own rate limiting and retries.
type Notifier interface {
	NotifyArticle(ctx context.Context, article *entity.Article) error
}
