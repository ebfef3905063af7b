// Package tracing wires OpenTelemetry into the HTTP server and the scrape worker.
//
//	shutdown, err := tracing.Init(ctx, tracing.Config{ServiceName: "news-website-api", Enabled: true})
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.Start(ctx, "scrape.run")
//	defer span.End()
package tracing
