// Package scrape runs the active scrape configurations: it reads each source,
// keeps the items matching the configured keywords and files them as articles.
package scrape

import (
	"context"
	"time"

	"news-website/internal/domain/entity"
)

// Item is one entry read from a source, before matching.
type Item struct {
	Title       string
	URL         string
	Content     string
	Image       string
	PublishedAt time.Time
}

// Page is the readable part of an article page.
type Page struct {
	Title string
	Text  string
	Image string
}

// Scraper reads the entries listed at a source URL (feed or HTML listing).
type Scraper interface {
	Scrape(ctx context.Context, sourceURL string) ([]Item, error)
}

// ContentFetcher extracts the article body of a single page.
type ContentFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (*Page, error)
}

// Summarizer shortens article text; the noop implementation returns a prefix.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Notifier is told about every inserted article. It must not block.
type Notifier interface {
	NotifyNewArticle(ctx context.Context, article *entity.Article)
}
