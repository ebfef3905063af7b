package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"news-website/internal/resilience/circuitbreaker"
	"news-website/internal/resilience/retry"
	"news-website/internal/usecase/scrape"

	"github.com/go-shiori/go-readability"
)

// ReadabilityFetcher extracts article text and the og:image of a page.
// Safe for concurrent use.
type ReadabilityFetcher struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	config  ContentFetchConfig
}

func NewReadabilityFetcher(client *http.Client, cfg ContentFetchConfig) *ReadabilityFetcher {
	if client == nil {
		client = NewHTTPClient(cfg)
	}
	return &ReadabilityFetcher{
		client: client,
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:             "content-fetch",
			MaxRequests:      5,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			FailureThreshold: 0.6,
			MinRequests:      5,
		}),
		config: cfg,
	}
}

func (f *ReadabilityFetcher) FetchPage(ctx context.Context, pageURL string) (*scrape.Page, error) {
	if _, err := ValidateURL(pageURL); err != nil {
		return nil, err
	}
	return circuitbreaker.Do(f.breaker, func() (*scrape.Page, error) {
		return f.fetch(ctx, pageURL)
	})
}

func (f *ReadabilityFetcher) fetch(ctx context.Context, pageURL string) (*scrape.Page, error) {
	body, final, err := Get(ctx, f.client, pageURL, f.config.MaxBodySize)
	if err != nil {
		return nil, err
	}
	article, err := readability.FromReader(bytes.NewReader(body), final)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scrape.ErrExtractionFailed, err)
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, fmt.Errorf("%w: no readable content", scrape.ErrExtractionFailed)
	}
	return &scrape.Page{
		Title: strings.TrimSpace(article.Title),
		Text:  text,
		Image: article.Image,
	}, nil
}

// Get reads at most maxBody bytes of a 200 response and returns the final URL
// after redirects. Non-2xx statuses come back as *retry.HTTPError.
func Get(ctx context.Context, client *http.Client, rawURL string, maxBody int64) ([]byte, *url.URL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", scrape.ErrInvalidURL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ue) && ue.Timeout()) {
			return nil, nil, fmt.Errorf("%w: %w", scrape.ErrTimeout, err)
		}
		return nil, nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := retry.CheckStatus(resp); err != nil {
		return nil, nil, err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > maxBody {
		return nil, nil, fmt.Errorf("%w: more than %d bytes", scrape.ErrBodyTooLarge, maxBody)
	}
	return body, resp.Request.URL, nil
}
