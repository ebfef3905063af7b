package heroslide

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	slideUC "news-website/internal/usecase/heroslide"
)

// Register mounts the hero slide routes. Editors can manage slides.
func Register(mux *http.ServeMux, svc *slideUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/hero-slides", ListHandler{svc})
	mux.Handle("POST   /api/hero-slides", guard.Editor(CreateHandler{svc}))
	mux.Handle("PUT    /api/hero-slides/{id}", guard.Editor(UpdateHandler{svc}))
	mux.Handle("DELETE /api/hero-slides/{id}", guard.Admin(DeleteHandler{svc}))
}
