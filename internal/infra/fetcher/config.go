package fetcher

import (
	"errors"
	"fmt"
	"time"

	"news-website/pkg/config"
)

// ContentFetchConfig bounds every outbound request made by the worker.
type ContentFetchConfig struct {
	// Timeout applies to a single request.
	Timeout time.Duration
	// MaxBodySize is enforced while reading, not from Content-Length.
	MaxBodySize int64
	// MaxRedirects caps the redirect chain; every hop is validated.
	MaxRedirects int
	// DenyPrivateIPs refuses to dial loopback, private and link-local addresses.
	DenyPrivateIPs bool
	UserAgent      string
}

func DefaultConfig() ContentFetchConfig {
	return ContentFetchConfig{
		Timeout:        15 * time.Second,
		MaxBodySize:    10 << 20,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "NewsWebsiteBot/1.0 (+https://github.com/news-website)",
	}
}

func (c *ContentFetchConfig) Validate() error {
	var errs []error
	if err := config.ValidateDurationRange(c.Timeout, time.Second, 2*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("timeout: %w", err))
	}
	if c.MaxBodySize <= 0 {
		errs = append(errs, fmt.Errorf("max body size must be positive, got %d", c.MaxBodySize))
	}
	if err := config.ValidateIntRange(c.MaxRedirects, 0, 20); err != nil {
		errs = append(errs, fmt.Errorf("max redirects: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfigFromEnv reads FETCH_TIMEOUT, FETCH_MAX_BODY_SIZE, FETCH_MAX_REDIRECTS
// and FETCH_DENY_PRIVATE_IPS.
func LoadConfigFromEnv() (ContentFetchConfig, error) {
	def := DefaultConfig()
	cfg := ContentFetchConfig{
		Timeout:        config.GetEnvDuration("FETCH_TIMEOUT", def.Timeout),
		MaxBodySize:    int64(config.GetEnvInt("FETCH_MAX_BODY_SIZE", int(def.MaxBodySize))),
		MaxRedirects:   config.GetEnvInt("FETCH_MAX_REDIRECTS", def.MaxRedirects),
		DenyPrivateIPs: config.GetEnvBool("FETCH_DENY_PRIVATE_IPS", def.DenyPrivateIPs),
		UserAgent:      config.GetEnvString("FETCH_USER_AGENT", def.UserAgent),
	}
	if err := cfg.Validate(); err != nil {
		return def, fmt.Errorf("invalid fetch configuration: %w", err)
	}
	return cfg, nil
}
