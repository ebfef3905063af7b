// Package source provides use cases for managing the content source URLs
// registered from the admin dashboard.
package source

import "errors"

// Sentinel errors for source use case operations.
var (
	// ErrSourceNotFound indicates that the requested source URL was not found.
	ErrSourceNotFound = errors.New("URL not found")
)
