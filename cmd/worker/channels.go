package main

import (
	"encoding/json"
	"net/http"

	"news-website/internal/usecase/notify"
)

type channelHealthResponse struct {
	Healthy  bool            `json:"healthy"`
	Channels []channelStatus `json:"channels"`
}

type channelStatus struct {
	Name               string `json:"name"`
	Enabled            bool   `json:"enabled"`
	CircuitBreakerOpen bool   `json:"circuit_breaker_open"`
}

// channelHealthHandler serves GET /health/channels. It returns 503 while any
// enabled channel has an open breaker.
func channelHealthHandler(svc *notify.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := channelHealthResponse{Healthy: true, Channels: []channelStatus{}}
		for _, h := range svc.Health() {
			resp.Channels = append(resp.Channels, channelStatus{
				Name:               h.Name,
				Enabled:            h.Enabled,
				CircuitBreakerOpen: h.CircuitOpen,
			})
			if h.Enabled && h.CircuitOpen {
				resp.Healthy = false
			}
		}

		status := http.StatusOK
		if !resp.Healthy {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
