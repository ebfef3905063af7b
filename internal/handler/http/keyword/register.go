package keyword

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	kwUC "news-website/internal/usecase/keyword"
)

// Register mounts the keyword routes; writes are admin only.
func Register(mux *http.ServeMux, svc *kwUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/keywords", ListHandler{svc})
	mux.Handle("POST   /api/keywords", guard.Admin(CreateHandler{svc}))
	mux.Handle("PUT    /api/keywords/{id}", guard.Admin(UpdateHandler{svc}))
	mux.Handle("DELETE /api/keywords/{id}", guard.Admin(DeleteHandler{svc}))
}
