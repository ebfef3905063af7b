package summarizer

import (
	"context"
	"strings"
	"unicode/utf8"

	"news-website/internal/observability/metrics"
)

// NoOp returns the beginning of the text, cut on a word boundary.
type NoOp struct {
	limit int
}

func NewNoOp(limit int) *NoOp {
	if limit <= 0 {
		limit = 500
	}
	return &NoOp{limit: limit}
}

func (n *NoOp) Summarize(_ context.Context, text string) (string, error) {
	metrics.RecordSummary(TypeNoop, true, 0)
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= n.limit {
		return text, nil
	}
	cut := string([]rune(text)[:n.limit])
	if i := strings.LastIndexAny(cut, " \n\t"); i > n.limit/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "...", nil
}
