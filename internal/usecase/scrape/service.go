package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"news-website/internal/domain/entity"
	"news-website/internal/observability/metrics"
	"news-website/internal/repository"
)

// summarizerParallelism caps concurrent LLM calls across all configs.
const summarizerParallelism = 3

// Config tunes one Service.
type Config struct {
	Parallelism         int
	ContentMinLength    int
	ContentFetchEnabled bool
	DefaultImage        string
}

// Service runs every active scrape configuration.
// Fetcher, Summarizer and Notifier are optional.
type Service struct {
	Configs    repository.ScrapConfigRepository
	Articles   repository.ArticleRepository
	Keywords   repository.KeywordRepository
	Categories repository.CategoryRepository
	Scraper    Scraper
	Fetcher    ContentFetcher
	Summarizer Summarizer
	Notifier   Notifier
	Config     Config

	summarySem *semaphore.Weighted
	once       sync.Once
}

// Stats describes one Run. Counters are updated atomically.
type Stats struct {
	ConfigsProcessed int64
	ItemsFetched     int64
	Matched          int64
	Inserted         int64
	Duplicates       int64
	Errors           int64
	Duration         time.Duration
}

// Run processes all active configs. A failing config is logged and counted;
// only loading the configuration or a cancelled context fails the run.
func (s *Service) Run(ctx context.Context) (*Stats, error) {
	s.once.Do(func() { s.summarySem = semaphore.NewWeighted(summarizerParallelism) })
	start := time.Now()
	stats := &Stats{}

	configs, err := s.Configs.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active scrap configs: %w", err)
	}
	keywords, err := s.Keywords.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active keywords: %w", err)
	}
	categories, err := s.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	r := newRules(keywords, categories)

	parallelism := s.Config.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	// 同じ URL を複数の設定が同時に処理しないようにする
	var seen sync.Map
	for _, cfg := range configs {
		g.Go(func() error {
			return s.runConfig(gctx, cfg, r, &seen, stats)
		})
	}
	err = g.Wait()
	stats.Duration = time.Since(start)

	slog.InfoContext(ctx, "scrape run completed",
		slog.Int("configs", len(configs)),
		slog.Int64("processed", stats.ConfigsProcessed),
		slog.Int64("fetched", stats.ItemsFetched),
		slog.Int64("matched", stats.Matched),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicates", stats.Duplicates),
		slog.Int64("errors", stats.Errors),
		slog.Duration("duration", stats.Duration))
	return stats, err
}

func (s *Service) runConfig(ctx context.Context, cfg *entity.ScrapConfig, r rules, seen *sync.Map, stats *Stats) error {
	logger := slog.With(
		slog.String("config_id", cfg.ID),
		slog.String("category", cfg.Category),
		slog.String("source_url", cfg.SourceURL))
	start := time.Now()
	atomic.AddInt64(&stats.ConfigsProcessed, 1)

	m := r.matcherFor(cfg)
	if m == nil {
		logger.Info("category inactive, skipping config")
		metrics.RecordScrapeRun(cfg.ID, "skipped", time.Since(start))
		return nil
	}

	items, err := s.Scraper.Scrape(ctx, cfg.SourceURL)
	if err != nil {
		if isCancel(ctx, err) {
			return err
		}
		atomic.AddInt64(&stats.Errors, 1)
		logger.Warn("scrape failed", slog.Any("error", err))
		metrics.RecordScrapeRun(cfg.ID, "failure", time.Since(start))
		return nil
	}
	atomic.AddInt64(&stats.ItemsFetched, int64(len(items)))
	metrics.RecordScrapedItems(cfg.SourceURL, "fetched", len(items))

	var matched, inserted, dups, failed int
	for _, item := range items {
		if !m.Match(item.Title, item.Content) {
			continue
		}
		matched++
		ok, err := s.processItem(ctx, cfg, item, seen)
		switch {
		case err != nil:
			if isCancel(ctx, err) {
				return err
			}
			failed++
			logger.Warn("item failed", slog.String("url", item.URL), slog.Any("error", err))
		case ok:
			inserted++
		default:
			dups++
		}
	}
	atomic.AddInt64(&stats.Matched, int64(matched))
	atomic.AddInt64(&stats.Inserted, int64(inserted))
	atomic.AddInt64(&stats.Duplicates, int64(dups))
	atomic.AddInt64(&stats.Errors, int64(failed))
	metrics.RecordScrapedItems(cfg.SourceURL, "matched", matched)
	metrics.RecordScrapedItems(cfg.SourceURL, "inserted", inserted)
	metrics.RecordScrapedItems(cfg.SourceURL, "duplicate", dups)

	if err := s.Configs.MarkRun(context.WithoutCancel(ctx), cfg.ID, time.Now().UTC()); err != nil {
		failed++
		atomic.AddInt64(&stats.Errors, 1)
		logger.Warn("failed to mark config run", slog.Any("error", err))
	}

	status := "success"
	if failed > 0 {
		status = "partial"
	}
	metrics.RecordScrapeRun(cfg.ID, status, time.Since(start))
	logger.Info("config scraped",
		slog.Int("items", len(items)),
		slog.Int("matched", matched),
		slog.Int("inserted", inserted),
		slog.Int("duplicates", dups),
		slog.Int("errors", failed),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// processItem stores one matched item. It returns false for duplicates. A URL
// that fails to store is released from seen so another config may retry it.
func (s *Service) processItem(ctx context.Context, cfg *entity.ScrapConfig, item Item, seen *sync.Map) (bool, error) {
	if item.URL == "" || item.Title == "" {
		return false, nil
	}
	if _, loaded := seen.LoadOrStore(item.URL, struct{}{}); loaded {
		return false, nil
	}
	exists, err := s.Articles.ExistsByURL(ctx, item.URL)
	if err != nil {
		seen.Delete(item.URL)
		return false, fmt.Errorf("check existing article: %w", err)
	}
	if exists {
		return false, nil
	}

	content, image := s.enhance(ctx, item)
	summary := s.summarize(ctx, item.URL, content)

	now := time.Now().UTC()
	published := item.PublishedAt
	if published.IsZero() {
		published = now
	}
	if image == "" {
		image = s.Config.DefaultImage
	}
	a := &entity.Article{
		Title:         item.Title,
		Content:       content,
		Category:      cfg.Category,
		PublishedDate: published.UTC(),
		Source:        item.URL,
		Image:         image,
		Slug:          entity.Slugify(item.Title),
		Summary:       summary,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Articles.Create(ctx, a); err != nil {
		seen.Delete(item.URL)
		return false, fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleCreated("scraper")

	if s.Notifier != nil {
		s.Notifier.NotifyNewArticle(context.WithoutCancel(ctx), a)
	}
	return true, nil
}

// enhance fetches the article page when the feed text is too short. The feed
// content is kept on any failure or when the page is not longer.
func (s *Service) enhance(ctx context.Context, item Item) (string, string) {
	content, image := item.Content, item.Image
	if s.Fetcher == nil || !s.Config.ContentFetchEnabled {
		return content, image
	}
	feedLen := utf8.RuneCountInString(content)
	if feedLen >= s.Config.ContentMinLength && image != "" {
		metrics.RecordContentFetchSkipped()
		return content, image
	}

	start := time.Now()
	page, err := s.Fetcher.FetchPage(ctx, item.URL)
	if err != nil {
		metrics.RecordContentFetchFailed(time.Since(start))
		slog.Debug("content fetch failed, keeping feed text",
			slog.String("url", item.URL),
			slog.Any("error", err))
		return content, image
	}
	metrics.RecordContentFetchSuccess(time.Since(start))

	if feedLen < s.Config.ContentMinLength && utf8.RuneCountInString(page.Text) > feedLen {
		content = page.Text
	}
	if image == "" {
		image = page.Image
	}
	return content, image
}

// summarize never fails the item; an empty summary is stored instead.
func (s *Service) summarize(ctx context.Context, url, content string) string {
	if s.Summarizer == nil || content == "" {
		return ""
	}
	if err := s.summarySem.Acquire(ctx, 1); err != nil {
		return ""
	}
	defer s.summarySem.Release(1)

	summary, err := s.Summarizer.Summarize(ctx, content)
	if err != nil {
		slog.Warn("summarization failed, storing article without summary",
			slog.String("url", url),
			slog.Any("error", err))
		return ""
	}
	return summary
}

func isCancel(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
