package scrape

import "errors"

// Errors returned by source scrapers and the page fetcher. Callers treat all of
// them as "skip this source/item" rather than aborting the run.
var (
	ErrInvalidURL        = errors.New("invalid URL or unsupported scheme")
	ErrPrivateIP         = errors.New("private IP access denied")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrBodyTooLarge      = errors.New("response body too large")
	ErrTimeout           = errors.New("request timeout")
	ErrExtractionFailed  = errors.New("content extraction failed")
	ErrNoItems           = errors.New("no items found on source")
	ErrUnsupportedSource = errors.New("source is neither a feed nor an HTML listing")
)
