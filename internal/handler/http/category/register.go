package category

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	catUC "news-website/internal/usecase/category"
)

// Register mounts the category routes; writes are admin only.
func Register(mux *http.ServeMux, svc *catUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/categories", ListHandler{svc})
	mux.Handle("POST   /api/categories", guard.Admin(CreateHandler{svc}))
	mux.Handle("PUT    /api/categories/{id}", guard.Admin(UpdateHandler{svc}))
	mux.Handle("DELETE /api/categories/{id}", guard.Admin(DeleteHandler{svc}))
}
