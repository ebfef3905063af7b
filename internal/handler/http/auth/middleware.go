package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"news-website/internal/handler/http/respond"
	"news-website/internal/observability/logging"
)

type ctxKey struct{}

// Guard wraps admin handlers.
type Guard struct {
	Keys *Keys
}

// Admin allows only the admin role.
func (g *Guard) Admin(next http.Handler) http.Handler {
	return g.wrap(next, false)
}

// Editor additionally lets editors POST and PUT.
func (g *Guard) Editor(next http.Handler) http.Handler {
	return g.wrap(next, true)
}

func (g *Guard) wrap(next http.Handler, editorOK bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearer(r.Header.Get("Authorization"))
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := g.Keys.Verify(raw)
		if err != nil {
			logging.WithRequestID(r.Context(), slog.Default()).Debug("token rejected", slog.String("error", err.Error()))
			respond.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !permits(claims.Role, r.Method, editorOK) {
			recordForbidden(claims.Role, r.Method)
			respond.Error(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
	})
}

// FromContext returns the claims of the authenticated caller.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}

func bearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
