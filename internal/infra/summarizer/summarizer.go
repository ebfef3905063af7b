package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"news-website/internal/observability/metrics"
	"news-website/internal/resilience/circuitbreaker"
	"news-website/internal/resilience/retry"
	"news-website/internal/usecase/scrape"
)

// maxInputRunes keeps prompts well inside every model's context window.
const maxInputRunes = 10000

// ErrEmptyResponse is returned when the provider answers without text.
var ErrEmptyResponse = errors.New("summarizer returned empty response")

// New builds the summarizer selected by cfg.Type.
func New(cfg Config) (scrape.Summarizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Type {
	case TypeClaude:
		return NewClaude(cfg), nil
	case TypeOpenAI:
		return NewOpenAI(cfg), nil
	default:
		return NewNoOp(cfg.CharacterLimit), nil
	}
}

// completeFunc sends one prompt and returns the model's text.
type completeFunc func(ctx context.Context, prompt string) (string, error)

// runner wraps a provider call with timeout, breaker, retry and metrics.
type runner struct {
	provider string
	cfg      Config
	breaker  *circuitbreaker.CircuitBreaker
	retry    retry.Config
	complete completeFunc
}

func newRunner(provider string, cfg Config, complete completeFunc) runner {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Language == "" {
		cfg.Language = "English"
	}
	return runner{
		provider: provider,
		cfg:      cfg,
		breaker:  circuitbreaker.New(circuitbreaker.SummarizerConfig(provider)),
		retry:    retry.SummarizerConfig(),
		complete: complete,
	}
}

func (r runner) prompt(text string) string {
	return fmt.Sprintf("Summarize the following news article in %s in at most %d characters. "+
		"Reply with the summary only.\n\n%s", r.cfg.Language, r.cfg.CharacterLimit, text)
}

func (r runner) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	input := truncateRunes(text, maxInputRunes)
	p := r.prompt(input)
	start := time.Now()

	var summary string
	err := retry.WithBackoff(ctx, r.retry, func() error {
		out, err := circuitbreaker.Do(r.breaker, func() (string, error) {
			return r.complete(ctx, p)
		})
		if err != nil {
			return err
		}
		summary = out
		return nil
	})
	d := time.Since(start)
	metrics.RecordSummary(r.provider, err == nil, d)
	if err != nil {
		slog.WarnContext(ctx, "summarization failed",
			slog.String("provider", r.provider),
			slog.Duration("duration", d),
			slog.Any("error", err))
		return "", fmt.Errorf("%s summarize: %w", r.provider, err)
	}

	n := utf8.RuneCountInString(summary)
	recordLength(n, r.cfg.CharacterLimit)
	slog.DebugContext(ctx, "summarization completed",
		slog.String("provider", r.provider),
		slog.Int("input_length", utf8.RuneCountInString(input)),
		slog.Int("summary_length", n),
		slog.Bool("within_limit", n <= r.cfg.CharacterLimit),
		slog.Duration("duration", d))
	return summary, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
