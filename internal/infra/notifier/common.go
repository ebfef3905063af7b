package notifier

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// RateLimitError is returned for a 429 from the webhook.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded (retry after %v)", e.RetryAfter)
}

// ClientError is a non-retryable 4xx.
type ClientError struct {
	StatusCode int
	Body       string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("webhook rejected request (%d): %s", e.StatusCode, e.Body)
}

// ServerError is a retryable 5xx.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("webhook server error (%d)", e.StatusCode)
}

// isRetryable treats network failures and 5xx as transient.
func isRetryable(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return false
	}
	var rl *RateLimitError
	return !errors.As(err, &rl)
}

// truncate shortens s to at most max bytes without splitting a rune.
func truncate(s string, max int, suffix string) string {
	if len(s) <= max {
		return s
	}
	cut := max - len(suffix)
	if cut < 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + suffix
}

func asRateLimit(err error, target **RateLimitError) bool {
	return errors.As(err, target)
}
