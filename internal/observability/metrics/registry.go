package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// 5ms から 10s まで。p95/p99 を見るため細かめ
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)
)

// Content metrics
var (
	ArticlesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Articles stored, by origin (admin or scraper)",
		},
		[]string{"origin"},
	)

	EngagementTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_engagement_total",
			Help: "Like and bookmark actions on articles",
		},
		[]string{"counter", "action"},
	)

	LookupStrategyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_lookup_strategy_total",
			Help: "Article lookups by the resolution step that matched",
		},
		[]string{"strategy"},
	)

	BlogImageBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blog_image_upload_bytes",
			Help:    "Size of uploaded blog post images",
			Buckets: prometheus.ExponentialBuckets(16<<10, 2, 9),
		},
	)
)

// Scrape metrics
var (
	ScrapeRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scrape_run_duration_seconds",
			Help:    "Duration of one scrape configuration run",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"config", "status"},
	)

	ScrapedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraped_items_total",
			Help: "Feed items seen by the scraper, by outcome",
		},
		[]string{"source", "outcome"}, // inserted, duplicate, filtered, invalid
	)

	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_attempts_total",
			Help: "Total number of article body fetch attempts",
		},
		[]string{"result"}, // success, failure, skipped
	)

	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Time taken to fetch article content",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)

	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_summaries_total",
			Help: "Summaries generated for scraped articles",
		},
		[]string{"provider", "status"},
	)

	SummaryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "article_summary_duration_seconds",
			Help:    "Time taken to summarize an article",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
		},
		[]string{"provider"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Outgoing notifications by channel and status",
		},
		[]string{"channel", "status"},
	)
)

// Database metrics
var (
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)

// RecordHTTPRequest records one finished request.
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize int64, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}

// RecordDBQuery records the duration of a named database operation.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
