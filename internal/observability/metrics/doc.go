// Package metrics registers the Prometheus collectors of the application on
// the default registry. They are exposed by the API at /metrics and by the
// worker on its own metrics port.
//
//	metrics.RecordEngagement("likes", "like")
//	metrics.RecordScrapeRun(cfg.Name, "success", time.Since(start))
package metrics
