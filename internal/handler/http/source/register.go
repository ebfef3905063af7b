package source

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	srcUC "news-website/internal/usecase/source"
)

// Register mounts the source URL routes; writes are admin only.
func Register(mux *http.ServeMux, svc *srcUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/urls", ListHandler{svc})
	mux.Handle("POST   /api/urls", guard.Admin(CreateHandler{svc}))
	mux.Handle("PUT    /api/urls/{id}", guard.Admin(UpdateHandler{svc}))
	mux.Handle("DELETE /api/urls/{id}", guard.Admin(DeleteHandler{svc}))
}
