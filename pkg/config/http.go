package config

import (
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"time"
)

// CORS holds the browser origin policy.
type CORS struct {
	AllowedOrigins   []string
	AllowCredentials bool
	MaxAge           int // seconds
}

// LoadCORS reads CORS_ALLOWED_ORIGINS, CORS_ALLOW_CREDENTIALS and CORS_MAX_AGE.
// With no origins configured, development allows http://localhost:3000 and
// everything else allows none.
func LoadCORS() CORS {
	def := []string{}
	if IsDevelopment() {
		def = []string{"http://localhost:3000"}
	}
	c := CORS{
		AllowedOrigins:   GetEnvStringList("CORS_ALLOWED_ORIGINS", def),
		AllowCredentials: GetEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           GetEnvInt("CORS_MAX_AGE", 300),
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" && c.AllowCredentials {
			slog.Warn("CORS wildcard origin cannot be combined with credentials, disabling credentials")
			c.AllowCredentials = false
		}
	}
	return c
}

// RateLimit configures the per-client request limiter.
type RateLimit struct {
	Enabled        bool
	Requests       int
	Window         time.Duration
	TrustedProxies []netip.Prefix
}

// LoadRateLimit reads RATE_LIMIT_ENABLED, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW
// and RATE_LIMIT_TRUSTED_PROXIES. A malformed proxy list is an error because
// trusting the wrong proxy lets clients pick their own rate limit key.
func LoadRateLimit() (RateLimit, error) {
	rl := RateLimit{
		Enabled:  GetEnvBool("RATE_LIMIT_ENABLED", true),
		Requests: GetEnvInt("RATE_LIMIT_REQUESTS", 100),
		Window:   GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
	if rl.Requests <= 0 {
		slog.Warn("RATE_LIMIT_REQUESTS must be positive, using default", slog.Int("value", rl.Requests))
		rl.Requests = 100
	}
	if err := ValidateDurationRange(rl.Window, time.Second, 24*time.Hour); err != nil {
		slog.Warn("invalid RATE_LIMIT_WINDOW, using default", slog.String("error", err.Error()))
		rl.Window = time.Minute
	}

	prefixes, err := ParsePrefixes(GetEnvStringList("RATE_LIMIT_TRUSTED_PROXIES", nil))
	if err != nil {
		return RateLimit{}, fmt.Errorf("RATE_LIMIT_TRUSTED_PROXIES: %w", err)
	}
	rl.TrustedProxies = prefixes
	return rl, nil
}

// ParsePrefixes accepts CIDRs and bare addresses (widened to /32 or /128).
func ParsePrefixes(items []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if p, err := netip.ParsePrefix(item); err == nil {
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid IP or CIDR %q", item)
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
