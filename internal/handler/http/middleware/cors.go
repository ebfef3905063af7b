package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"news-website/internal/handler/http/requestid"
	"news-website/pkg/config"
)

// CORS builds the go-chi/cors handler for the admin and public frontends.
func CORS(c config.CORS) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestid.Header},
		ExposedHeaders:   []string{requestid.Header, "X-Lookup-Strategy", "X-Trace-Id"},
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
	})
}
