package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics covers the cron job and configuration state. Per-source
// counters live in observability/metrics.
type WorkerMetrics struct {
	JobRunsTotal         *prometheus.CounterVec
	JobDurationSeconds   prometheus.Histogram
	ConfigsProcessed     prometheus.Counter
	LastSuccessTimestamp prometheus.Gauge

	ConfigLoadTimestamp prometheus.Gauge
	ConfigFallbacks     *prometheus.CounterVec
	ConfigFallbackOn    prometheus.Gauge
}

// NewWorkerMetrics registers the collectors on reg.
func NewWorkerMetrics(reg prometheus.Registerer) *WorkerMetrics {
	f := promauto.With(reg)
	return &WorkerMetrics{
		JobRunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Scrape runs by status (success/partial/failure)",
		}, []string{"status"}),
		JobDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Duration of a scrape run in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),
		ConfigsProcessed: f.NewCounter(prometheus.CounterOpts{
			Name: "worker_cron_job_configs_processed_total",
			Help: "Scrape configurations processed across runs",
		}),
		LastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix time of the last run without errors",
		}),
		ConfigLoadTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_config_load_timestamp",
			Help: "Unix time the configuration was loaded",
		}),
		ConfigFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_config_fallbacks_total",
			Help: "Invalid configuration values replaced by defaults",
		}, []string{"field"}),
		ConfigFallbackOn: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_config_fallback_active",
			Help: "1 when any configuration default is in use because of a bad value",
		}),
	}
}

// RecordRun records one scheduled run.
func (m *WorkerMetrics) RecordRun(status string, seconds float64, configs int) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
	m.JobDurationSeconds.Observe(seconds)
	m.ConfigsProcessed.Add(float64(configs))
	if status == "success" {
		m.LastSuccessTimestamp.SetToCurrentTime()
	}
}

func (m *WorkerMetrics) RecordFallback(field string) {
	m.ConfigFallbacks.WithLabelValues(field).Inc()
}

func (m *WorkerMetrics) SetFallbackActive(active bool) {
	if active {
		m.ConfigFallbackOn.Set(1)
		return
	}
	m.ConfigFallbackOn.Set(0)
}

func (m *WorkerMetrics) RecordLoadTimestamp() {
	m.ConfigLoadTimestamp.SetToCurrentTime()
}
