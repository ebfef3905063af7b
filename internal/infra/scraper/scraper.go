// Package scraper reads the entries listed at a scrape config's source URL.
// Feeds (RSS, Atom, JSON Feed) are parsed with gofeed; anything else is
// treated as an HTML listing page and its article links are extracted with
// goquery.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"news-website/internal/infra/fetcher"
	"news-website/internal/resilience/circuitbreaker"
	"news-website/internal/resilience/retry"
	"news-website/internal/usecase/scrape"

	"github.com/mmcdole/gofeed"
)

const (
	defaultMaxBody = 10 << 20
	maxItems       = 100
)

// Source implements scrape.Scraper. Every host gets its own circuit breaker
// so one broken site does not stop the others.
type Source struct {
	client  *http.Client
	maxBody int64
	retry   retry.Config

	mu       sync.Mutex
	breakers map[string]*circuitbreaker.CircuitBreaker
}

// NewSource uses client for every request; pass fetcher.NewHTTPClient in production.
func NewSource(client *http.Client, maxBody int64) *Source {
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	return &Source{
		client:   client,
		maxBody:  maxBody,
		retry:    retry.SourceFetchConfig(),
		breakers: map[string]*circuitbreaker.CircuitBreaker{},
	}
}

func (s *Source) breaker(host string) *circuitbreaker.CircuitBreaker {
	s.mu.Lock()
	defer s.mu.Unlock()
	cb, ok := s.breakers[host]
	if !ok {
		cb = circuitbreaker.New(circuitbreaker.SourceFetchConfig(host))
		s.breakers[host] = cb
	}
	return cb
}

type page struct {
	body  []byte
	final *url.URL
}

// Scrape downloads sourceURL once and parses it as a feed or a listing.
func (s *Source) Scrape(ctx context.Context, sourceURL string) ([]scrape.Item, error) {
	u, err := fetcher.ValidateURL(sourceURL)
	if err != nil {
		return nil, err
	}
	cb := s.breaker(u.Host)

	var p page
	err = retry.WithBackoff(ctx, s.retry, func() error {
		got, err := circuitbreaker.Do(cb, func() (page, error) {
			body, final, err := fetcher.Get(ctx, s.client, sourceURL, s.maxBody)
			return page{body: body, final: final}, err
		})
		if err != nil {
			if circuitbreaker.IsOpenError(err) {
				slog.WarnContext(ctx, "source circuit open, skipping",
					slog.String("host", u.Host),
					slog.String("state", cb.State().String()))
			}
			return err
		}
		p = got
		return nil
	})
	if err != nil {
		return nil, err
	}

	var items []scrape.Item
	if gofeed.DetectFeedType(bytes.NewReader(p.body)) != gofeed.FeedTypeUnknown {
		items, err = parseFeed(p.body)
	} else {
		items, err = parseListing(p.body, p.final)
	}
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", scrape.ErrNoItems, sourceURL)
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items, nil
}
