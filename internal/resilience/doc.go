// Package resilience groups the fault tolerance helpers used by the scrape
// worker around its outbound calls (source sites, summarizer APIs, webhooks).
//
//	cb := circuitbreaker.New(circuitbreaker.SourceFetchConfig("feeds.example.com"))
//	items, err := circuitbreaker.Do(cb, func() ([]scrape.Item, error) {
//		return scraper.Scrape(ctx, url)
//	})
//
//	err = retry.WithBackoff(ctx, retry.SourceFetchConfig(), func() error {
//		return send(ctx)
//	})
package resilience
