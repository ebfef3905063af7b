// Package respond writes JSON responses and error bodies.
// Raw error text only reaches clients when the process runs in development mode.
package respond

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"

	"news-website/internal/domain/entity"
	"news-website/internal/observability/logging"
	"news-website/pkg/config"
)

var development atomic.Bool

func init() {
	development.Store(config.IsDevelopment())
}

// SetDevelopment toggles whether Fail includes error details.
func SetDevelopment(on bool) { development.Store(on) }

// IsDevelopment reports the current mode.
func IsDevelopment() bool { return development.Load() }

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// ヘッダ送信済みなのでログのみ
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Error: msg})
}

// Fail writes msg as the public error and logs err with secrets masked.
// In development the sanitized error text is returned as details.
func Fail(w http.ResponseWriter, code int, msg string, err error) {
	body := ErrorBody{Error: msg}
	if err != nil {
		level := slog.LevelWarn
		if code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Default().Log(context.Background(), level, "request failed",
			slog.Int("code", code),
			slog.String("message", msg),
			slog.String("error", logging.SanitizeError(err)))
		if IsDevelopment() {
			body.Details = logging.SanitizeError(err)
		}
	}
	JSON(w, code, body)
}

// ValidationFailed writes 400 {"error":"Validation failed","details":[...]}.
func ValidationFailed(w http.ResponseWriter, errs entity.ValidationErrors) {
	if errs == nil {
		errs = entity.ValidationErrors{}
	}
	JSON(w, http.StatusBadRequest, ErrorBody{Error: "Validation failed", Details: errs})
}

// Success writes 200 {"success":true} merged with extra fields.
func Success(w http.ResponseWriter, code int, extra map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	JSON(w, code, body)
}

// IfValidation writes the 400 validation body when err carries field
// failures and reports whether it did.
func IfValidation(w http.ResponseWriter, err error) bool {
	errs, ok := entity.AsValidationErrors(err)
	if !ok {
		return false
	}
	ValidationFailed(w, errs)
	return true
}

// DecodeJSON decodes the request body into v, answering 400 "Invalid request
// body" and returning false when it is not valid JSON.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}
