package summarizer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	summaryLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "article_summary_length_characters",
		Help:    "Length of generated summaries in characters",
		Buckets: []float64{100, 200, 400, 600, 800, 1000, 1500, 2000, 5000},
	})

	summaryLimitExceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "article_summary_limit_exceeded_total",
		Help: "Summaries longer than the configured character limit",
	})
)

func recordLength(n, limit int) {
	summaryLength.Observe(float64(n))
	if n > limit {
		summaryLimitExceeded.Inc()
	}
}
