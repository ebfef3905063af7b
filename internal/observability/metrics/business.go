package metrics

import (
	"time"
)

// RecordArticleCreated counts an article stored by the admin API or the scraper.
func RecordArticleCreated(origin string) {
	ArticlesCreatedTotal.WithLabelValues(origin).Inc()
}

// RecordEngagement counts a like/unlike or bookmark add/remove.
func RecordEngagement(counter, action string) {
	EngagementTotal.WithLabelValues(counter, action).Inc()
}

// RecordLookup counts which resolution step served an article lookup.
func RecordLookup(strategy string) {
	LookupStrategyTotal.WithLabelValues(strategy).Inc()
}

// RecordBlogImage observes the size of an uploaded image.
func RecordBlogImage(size int) {
	BlogImageBytes.Observe(float64(size))
}

// RecordScrapeRun records the outcome of one scrape configuration.
// status is "success", "partial" or "failure".
func RecordScrapeRun(config, status string, d time.Duration) {
	ScrapeRunDuration.WithLabelValues(config, status).Observe(d.Seconds())
}

// RecordScrapedItems adds n items of one outcome for a source.
func RecordScrapedItems(source, outcome string, n int) {
	if n <= 0 {
		return
	}
	ScrapedItemsTotal.WithLabelValues(source, outcome).Add(float64(n))
}

// RecordContentFetchSuccess records a successful article body fetch.
func RecordContentFetchSuccess(d time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(d.Seconds())
}

// RecordContentFetchFailed records a failed fetch.
func RecordContentFetchFailed(d time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(d.Seconds())
}

// RecordContentFetchSkipped is used when the feed already carried enough text.
func RecordContentFetchSkipped() {
	ContentFetchAttemptsTotal.WithLabelValues("skipped").Inc()
}

// RecordSummary records one summarization call.
func RecordSummary(provider string, ok bool, d time.Duration) {
	status := "success"
	if !ok {
		status = "failure"
	}
	SummariesTotal.WithLabelValues(provider, status).Inc()
	SummaryDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// RecordNotification records one outgoing notification.
func RecordNotification(channel string, ok bool) {
	status := "success"
	if !ok {
		status = "failure"
	}
	NotificationsTotal.WithLabelValues(channel, status).Inc()
}
