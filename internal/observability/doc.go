// Package observability groups the logging, metrics and tracing helpers shared
// by the API server and the scrape worker.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors and record helpers
//   - tracing: OpenTelemetry provider setup and HTTP middleware
package observability
