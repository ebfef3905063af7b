// Package article provides use cases for reading, creating and reacting to articles,
// including the identifier resolution chain used by the public article pages.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrInvalidAction indicates a like/bookmark action outside the accepted set.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidLimit indicates a list limit that is not a positive integer.
	ErrInvalidLimit = errors.New("invalid limit")
)
