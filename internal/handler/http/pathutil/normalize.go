package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/lookup/[^/]+$`), Template: "/api/articles/lookup/:identifier"},
	{Pattern: regexp.MustCompile(`^/api/blogposts/slug/[^/]+$`), Template: "/api/blogposts/slug/:slug"},
	{Pattern: regexp.MustCompile(`^/api/(articles|blogposts|categories|keywords|urls|scrap-config|hero-slides|comments)/[^/]+$`), Template: "/api/$1/:id"},
}

// reserved second segments that are routes of their own, not ids.
var reserved = map[string]bool{
	"/api/articles/like":     true,
	"/api/articles/bookmark": true,
}

// NormalizePath collapses ids, slugs and lookup identifiers so that metric
// labels stay bounded. Static paths pass through unchanged.
//
//	NormalizePath("/api/articles/65f0c0ffee0000000000abcd")  // "/api/articles/:id"
//	NormalizePath("/api/blogposts/slug/hello-world")        // "/api/blogposts/slug/:slug"
//	NormalizePath("/api/articles/like")                     // "/api/articles/like"
//	NormalizePath("/health")                                // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	if reserved[path] {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Pattern.ReplaceAllString(path, p.Template)
		}
	}
	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization.
func GetExpectedCardinality() int {
	const resources = 8
	const static = 10 // /health, /metrics, /auth/token, list routes, ...
	return resources + len(reserved) + 2 + static
}
