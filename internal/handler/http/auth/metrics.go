package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login and guard outcomes. "unknown" is used when the user could not be
// resolved to a role.
var (
	tokenIssuance = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_token_requests_total",
		Help: "Token endpoint requests by resolved role and outcome",
	}, []string{"role", "outcome"})

	tokenIssuanceSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "admin_token_request_duration_seconds",
		Help:    "Time spent checking credentials and signing the token",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"role"})

	guardRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_guard_rejections_total",
		Help: "Authenticated requests refused because the role may not write",
	}, []string{"role", "method"})
)

func recordAuth(role, outcome string, start time.Time) {
	tokenIssuance.WithLabelValues(role, outcome).Inc()
	tokenIssuanceSeconds.WithLabelValues(role).Observe(time.Since(start).Seconds())
}

func recordForbidden(role, method string) {
	guardRejections.WithLabelValues(role, method).Inc()
}
