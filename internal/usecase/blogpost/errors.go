// Package blogpost provides use cases for the blog CMS: posts with tags and an
// optional inline image, plus lookup by the slug used in public blog URLs.
package blogpost

import "errors"

// Sentinel errors for blog post use case operations.
var (
	ErrTitleContentRequired = errors.New("title and content are required")
	ErrPostNotFound         = errors.New("post not found")
	ErrImageTooLarge        = errors.New("image too large")

	// ErrDeleteFailed is reported when a delete removed nothing.
	ErrDeleteFailed = errors.New("failed to delete post")
)
