package blogpost

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	postUC "news-website/internal/usecase/blogpost"
)

// Register mounts the blog routes. Editors may create and update; deleting
// is admin only.
func Register(mux *http.ServeMux, svc *postUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/blogposts", ListHandler{svc})
	mux.Handle("GET    /api/blogposts/{id}", GetHandler{svc})
	mux.Handle("GET    /api/blogposts/slug/{slug}", SlugHandler{svc})
	mux.Handle("POST   /api/blogposts", guard.Editor(CreateHandler{svc}))
	mux.Handle("PUT    /api/blogposts/{id}", guard.Editor(UpdateHandler{svc}))
	mux.Handle("DELETE /api/blogposts/{id}", guard.Admin(DeleteHandler{svc}))
}
