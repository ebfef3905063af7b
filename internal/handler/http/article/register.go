package article

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	artUC "news-website/internal/usecase/article"
)

// Register mounts the article routes. Reading and reacting are public;
// creating requires an editor or admin token.
func Register(mux *http.ServeMux, svc *artUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/articles", ListHandler{svc})
	mux.Handle("GET    /api/articles/{id}", GetHandler{svc})
	mux.Handle("GET    /api/articles/lookup/{identifier}", LookupHandler{svc})
	mux.Handle("POST   /api/articles", guard.Editor(CreateHandler{svc}))
	mux.Handle("POST   /api/articles/like", LikeHandler{svc})
	mux.Handle("POST   /api/articles/bookmark", BookmarkHandler{svc})
}
