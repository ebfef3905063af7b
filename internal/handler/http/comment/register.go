package comment

import (
	"net/http"

	"news-website/internal/handler/http/auth"
	commentUC "news-website/internal/usecase/comment"
)

// Register mounts the comment routes. Editors may edit comments; only
// admins delete them.
func Register(mux *http.ServeMux, svc *commentUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /api/comments", ListHandler{svc})
	mux.Handle("POST   /api/comments", CreateHandler{svc})
	mux.Handle("PUT    /api/comments/{id}", guard.Editor(UpdateHandler{svc}))
	mux.Handle("DELETE /api/comments/{id}", guard.Admin(DeleteHandler{svc}))
}
