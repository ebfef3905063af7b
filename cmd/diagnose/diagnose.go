package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/resilience/circuitbreaker"
	"news-website/internal/resilience/retry"
	"news-website/internal/usecase/scrape"
)

const (
	StatusOK          = "OK"
	StatusEmpty       = "EMPTY"
	StatusTimeout     = "TIMEOUT"
	StatusHTTPError   = "HTTP_ERROR"
	StatusParseError  = "PARSE_ERROR"
	StatusInvalidURL  = "INVALID_URL"
	StatusCircuitOpen = "CIRCUIT_OPEN"
	StatusError       = "ERROR"
)

// Diagnostic is the result for one scrape config.
type Diagnostic struct {
	ConfigID       string `json:"config_id"`
	Category       string `json:"category"`
	URL            string `json:"url"`
	Active         bool   `json:"active"`
	Status         string `json:"status"`
	HTTPCode       int    `json:"http_code,omitempty"`
	ItemCount      int    `json:"item_count"`
	LatestDate     string `json:"latest_date,omitempty"`
	Error          string `json:"error,omitempty"`
	ResponseTimeMS int64  `json:"response_time_ms"`
}

func diagnose(ctx context.Context, s scrape.Scraper, cfg *entity.ScrapConfig, timeout time.Duration) Diagnostic {
	d := Diagnostic{
		ConfigID: cfg.ID,
		Category: cfg.Category,
		URL:      cfg.SourceURL,
		Active:   cfg.IsActive,
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	items, err := s.Scrape(ctx, cfg.SourceURL)
	d.ResponseTimeMS = time.Since(start).Milliseconds()
	if err != nil {
		d.Status, d.HTTPCode = classify(err)
		if d.Status == StatusTimeout {
			d.Error = fmt.Sprintf("request timeout after %v", timeout)
		} else {
			d.Error = err.Error()
		}
		return d
	}

	d.Status = StatusOK
	d.ItemCount = len(items)
	if latest := latestDate(items); !latest.IsZero() {
		d.LatestDate = latest.UTC().Format(time.RFC3339)
	}
	return d
}

// classify maps a scrape error to a report status and, for HTTP failures,
// the status code.
func classify(err error) (string, int) {
	var httpErr *retry.HTTPError
	switch {
	case errors.Is(err, scrape.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout, 0
	case errors.As(err, &httpErr):
		return StatusHTTPError, httpErr.StatusCode
	case errors.Is(err, scrape.ErrNoItems):
		return StatusEmpty, 0
	case errors.Is(err, scrape.ErrUnsupportedSource), errors.Is(err, scrape.ErrExtractionFailed):
		return StatusParseError, 0
	case errors.Is(err, scrape.ErrInvalidURL), errors.Is(err, scrape.ErrPrivateIP):
		return StatusInvalidURL, 0
	case circuitbreaker.IsOpenError(err):
		return StatusCircuitOpen, 0
	default:
		return StatusError, 0
	}
}

func latestDate(items []scrape.Item) time.Time {
	var latest time.Time
	for _, it := range items {
		if it.PublishedAt.After(latest) {
			latest = it.PublishedAt
		}
	}
	return latest
}
