// Package http wires the HTTP surface of the news website API: health probes,
// metrics and the middleware shared by every resource handler.
package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"news-website/internal/handler/http/respond"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is one dependency check.
type CheckStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// HealthHandler pings every registered dependency.
// Any failure makes the whole response 503.
type HealthHandler struct {
	Checks  map[string]Pinger
	Version string
	Timeout time.Duration
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	checks, healthy := runChecks(ctx, h.Checks)
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}
	code := http.StatusOK
	if !healthy {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, resp)
}

func runChecks(ctx context.Context, pingers map[string]Pinger) (map[string]CheckStatus, bool) {
	names := make([]string, 0, len(pingers))
	for name := range pingers {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]CheckStatus, len(pingers))
	healthy := len(pingers) > 0
	for _, name := range names {
		start := time.Now()
		err := pingers[name].Ping(ctx)
		cs := CheckStatus{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
		if err != nil {
			// エラー文はDSNを含み得るので返さない
			cs.Status = "unhealthy"
			cs.Message = "ping failed"
			healthy = false
		}
		out[name] = cs
	}
	return out, healthy
}

// ReadyHandler is the readiness probe.
type ReadyHandler struct {
	Checks map[string]Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, ok := runChecks(ctx, h.Checks); !ok {
		respond.Error(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LiveHandler is the liveness probe. It never touches dependencies.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
