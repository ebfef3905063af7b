// Package worker holds the runtime settings, metrics and health server of the
// scrape worker process.
package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"news-website/pkg/config"
)

// WorkerConfig controls scheduling and pipeline limits.
type WorkerConfig struct {
	// CronSchedule is a five-field cron expression.
	CronSchedule string
	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string
	// CrawlTimeout bounds one complete run across all configs.
	CrawlTimeout time.Duration
	// Parallelism is the number of scrape configs processed at once.
	Parallelism int
	// NotifyMaxConcurrent bounds in-flight notifications.
	NotifyMaxConcurrent int
	// ContentMinLength triggers a full page fetch for shorter feed bodies.
	ContentMinLength int
	// ContentFetchEnabled turns full page extraction on.
	ContentFetchEnabled bool
	// DefaultImage is stored for items that carry no image.
	DefaultImage string
	// MetricsPort serves /metrics and the health endpoints.
	MetricsPort int
	// RunOnStart triggers one run immediately after startup.
	RunOnStart bool
}

// DefaultConfig runs every 30 minutes in UTC.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:        "*/30 * * * *",
		Timezone:            "UTC",
		CrawlTimeout:        20 * time.Minute,
		Parallelism:         4,
		NotifyMaxConcurrent: 10,
		ContentMinLength:    500,
		ContentFetchEnabled: true,
		DefaultImage:        "https://placehold.co/1200x630?text=News",
		MetricsPort:         9091,
	}
}

// Validate collects every invalid field into one error.
func (c *WorkerConfig) Validate() error {
	var errs []error
	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateDurationRange(c.CrawlTimeout, time.Minute, 4*time.Hour); err != nil {
		errs = append(errs, fmt.Errorf("crawl timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.Parallelism, 1, 32); err != nil {
		errs = append(errs, fmt.Errorf("parallelism: %w", err))
	}
	if err := config.ValidateIntRange(c.NotifyMaxConcurrent, 1, 50); err != nil {
		errs = append(errs, fmt.Errorf("notify max concurrent: %w", err))
	}
	if c.ContentMinLength < 0 {
		errs = append(errs, fmt.Errorf("content min length: must not be negative, got %d", c.ContentMinLength))
	}
	if err := config.ValidateIntRange(c.MetricsPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("metrics port: %w", err))
	}
	return errors.Join(errs...)
}

// Location returns the configured zone, falling back to UTC.
func (c *WorkerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfigFromEnv never fails: every invalid value is logged, counted in
// metrics and replaced by its default.
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) *WorkerConfig {
	cfg := DefaultConfig()
	def := DefaultConfig()
	fallback := false

	check := func(field, key string, raw string, err error) {
		if err == nil {
			return
		}
		fallback = true
		if metrics != nil {
			metrics.RecordFallback(field)
		}
		logger.Warn("configuration fallback applied",
			slog.String("field", field),
			slog.String("env_key", key),
			slog.String("invalid_value", raw),
			slog.Any("error", err))
	}

	if v, ok := os.LookupEnv("CRON_SCHEDULE"); ok {
		err := config.ValidateCronSchedule(v)
		if err == nil {
			cfg.CronSchedule = v
		}
		check("cron_schedule", "CRON_SCHEDULE", v, err)
	}
	if v, ok := os.LookupEnv("CRON_TIMEZONE"); ok {
		err := config.ValidateTimezone(v)
		if err == nil {
			cfg.Timezone = v
		}
		check("timezone", "CRON_TIMEZONE", v, err)
	}
	if v, ok := os.LookupEnv("CRAWL_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err == nil {
			err = config.ValidateDurationRange(d, time.Minute, 4*time.Hour)
		}
		if err == nil {
			cfg.CrawlTimeout = d
		}
		check("crawl_timeout", "CRAWL_TIMEOUT", v, err)
	}

	intEnv := func(field, key string, min, max int, dst *int) {
		v, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		n, err := strconv.Atoi(v)
		if err == nil {
			err = config.ValidateIntRange(n, min, max)
		}
		if err == nil {
			*dst = n
		}
		check(field, key, v, err)
	}
	intEnv("parallelism", "SCRAPE_PARALLELISM", 1, 32, &cfg.Parallelism)
	intEnv("notify_max_concurrent", "NOTIFY_MAX_CONCURRENT", 1, 50, &cfg.NotifyMaxConcurrent)
	intEnv("content_min_length", "CONTENT_MIN_LENGTH", 0, 1<<20, &cfg.ContentMinLength)
	intEnv("metrics_port", "WORKER_METRICS_PORT", 1024, 65535, &cfg.MetricsPort)

	cfg.ContentFetchEnabled = config.GetEnvBool("CONTENT_FETCH_ENABLED", def.ContentFetchEnabled)
	cfg.RunOnStart = config.GetEnvBool("SCRAPE_RUN_ON_START", def.RunOnStart)
	cfg.DefaultImage = config.GetEnvString("SCRAPE_DEFAULT_IMAGE", def.DefaultImage)

	if metrics != nil {
		metrics.SetFallbackActive(fallback)
		metrics.RecordLoadTimestamp()
	}
	return &cfg
}
