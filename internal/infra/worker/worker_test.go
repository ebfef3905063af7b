package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "*/30 * * * *", cfg.CronSchedule)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CronSchedule = "nope"
	cfg.Parallelism = 0
	cfg.MetricsPort = 80
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron schedule")
	assert.Contains(t, err.Error(), "parallelism")
	assert.Contains(t, err.Error(), "metrics port")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		t.Setenv("CRON_SCHEDULE", "0 * * * *")
		t.Setenv("CRON_TIMEZONE", "Asia/Tokyo")
		t.Setenv("CRAWL_TIMEOUT", "45m")
		t.Setenv("SCRAPE_PARALLELISM", "8")
		t.Setenv("CONTENT_MIN_LENGTH", "0")
		t.Setenv("SCRAPE_DEFAULT_IMAGE", "https://cdn.example.com/default.png")
		t.Setenv("SCRAPE_RUN_ON_START", "true")

		m := NewWorkerMetrics(prometheus.NewRegistry())
		cfg := LoadConfigFromEnv(quietLogger(), m)
		assert.Equal(t, "0 * * * *", cfg.CronSchedule)
		assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
		assert.Equal(t, 45*time.Minute, cfg.CrawlTimeout)
		assert.Equal(t, 8, cfg.Parallelism)
		assert.Equal(t, 0, cfg.ContentMinLength)
		assert.Equal(t, "https://cdn.example.com/default.png", cfg.DefaultImage)
		assert.True(t, cfg.RunOnStart)
		assert.Equal(t, float64(0), testutil.ToFloat64(m.ConfigFallbackOn))
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("CRON_SCHEDULE", "every now and then")
		t.Setenv("CRON_TIMEZONE", "Nowhere/Land")
		t.Setenv("CRAWL_TIMEOUT", "5s")
		t.Setenv("SCRAPE_PARALLELISM", "many")
		t.Setenv("WORKER_METRICS_PORT", "22")

		m := NewWorkerMetrics(prometheus.NewRegistry())
		cfg := LoadConfigFromEnv(quietLogger(), m)
		def := DefaultConfig()
		assert.Equal(t, def.CronSchedule, cfg.CronSchedule)
		assert.Equal(t, def.Timezone, cfg.Timezone)
		assert.Equal(t, def.CrawlTimeout, cfg.CrawlTimeout)
		assert.Equal(t, def.Parallelism, cfg.Parallelism)
		assert.Equal(t, def.MetricsPort, cfg.MetricsPort)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.ConfigFallbackOn))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.ConfigFallbacks.WithLabelValues("cron_schedule")))
		assert.Equal(t, 5, testutil.CollectAndCount(m.ConfigFallbacks))
	})
}

func TestWorkerMetrics_RecordRun(t *testing.T) {
	m := NewWorkerMetrics(prometheus.NewRegistry())
	m.RecordRun("success", 12, 3)
	m.RecordRun("partial", 20, 2)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.JobRunsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.ConfigsProcessed))
	assert.Positive(t, testutil.ToFloat64(m.LastSuccessTimestamp))
}

func TestHealthServer(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWorkerMetrics(reg).RecordRun("success", 1, 1)

	h := NewHealthServer(":0", quietLogger(), reg)
	dbErr := errors.New("db down")
	var failing atomic.Bool
	h.AddCheck("database", func(context.Context) error {
		if failing.Load() {
			return dbErr
		}
		return nil
	})
	h.Handle("GET /health/channels", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	get := func(path string) (int, healthResponse) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		var body healthResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return resp.StatusCode, body
	}

	code, body := get("/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)

	code, body = get("/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not ready", body.Status)

	h.SetReady(true)
	code, body = get("/health/ready")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]string{"database": "ok"}, body.Checks)

	failing.Store(true)
	code, body = get("/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body.Status)

	code, _ = get("/health/channels")
	assert.Equal(t, http.StatusTeapot, code)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "worker_cron_job_runs_total")
}

func TestHealthServer_StartStops(t *testing.T) {
	h := NewHealthServer("127.0.0.1:0", quietLogger(), prometheus.NewRegistry())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Start(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("health server did not stop")
	}
}
