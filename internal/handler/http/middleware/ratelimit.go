package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"

	"news-website/internal/handler/http/respond"
	"news-website/pkg/config"
)

// RateLimit limits requests per client IP with a sliding window counter.
// Disabled configs return the handler unchanged.
func RateLimit(c config.RateLimit) func(http.Handler) http.Handler {
	if !c.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	ips := ClientIP{Trusted: c.TrustedProxies}
	return httprate.Limit(c.Requests, c.Window,
		httprate.WithKeyFuncs(ips.Resolve),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respond.Error(w, http.StatusTooManyRequests, "Too many requests")
		}),
	)
}
