package scrapconfig

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	cfgUC "news-website/internal/usecase/scrapconfig"
)

// Register mounts the scrape configuration routes. Reading is public so the
// dashboard can render without a token; writes are admin only.
func Register(mux *http.ServeMux, svc *cfgUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/scrap-config", ListHandler{svc})
	mux.Handle("POST   /api/scrap-config", guard.Admin(CreateHandler{svc}))
	mux.Handle("PUT    /api/scrap-config/{id}", guard.Admin(UpdateHandler{svc}))
	mux.Handle("DELETE /api/scrap-config/{id}", guard.Admin(DeleteHandler{svc}))
}
