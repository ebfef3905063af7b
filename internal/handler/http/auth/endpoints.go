package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"news-website/internal/handler/http/respond"
	"news-website/internal/observability/logging"
)

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenHandler exchanges admin credentials for a JWT.
type TokenHandler struct {
	Provider Provider
	Keys     *Keys
}

// ServeHTTP 管理者トークン発行
// @Summary      Issue admin token
// @Description  Exchanges ADMIN_USER credentials for an HS256 JWT used by the admin dashboard
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "credentials (username or email)"
// @Success      200 {object} tokenResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      401 {object} respond.ErrorBody
// @Failure      429 {object} respond.ErrorBody "rate limited"
// @Router       /auth/token [post]
func (h TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logging.WithRequestID(r.Context(), slog.Default())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		recordAuth("unknown", "failure", start)
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user := req.Username
	if user == "" {
		user = req.Email
	}

	role, err := h.Provider.Authenticate(r.Context(), Credentials{Username: user, Password: req.Password})
	if err != nil {
		log.Warn("authentication failed", slog.String("reason", err.Error()))
		recordAuth("unknown", "failure", start)
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, exp, err := h.Keys.Issue(user, role)
	if err != nil {
		recordAuth(role, "failure", start)
		respond.Fail(w, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	log.Info("authentication successful", slog.String("role", role))
	recordAuth(role, "success", start)
	respond.JSON(w, http.StatusOK, tokenResponse{Token: token, ExpiresAt: exp})
}
