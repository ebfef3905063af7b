package article

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	"news-website/internal/observability/metrics"
	artUC "news-website/internal/usecase/article"
)

// reaction serves both counters. They differ only in the service call and
// the name of the returned field.
type reaction struct {
	apply   func(ctx context.Context, id, action string) (int64, error)
	counter string
}

func (h reaction) serve(w http.ResponseWriter, r *http.Request) {
	var req reactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	n, err := h.apply(r.Context(), req.ArticleID, req.Action)
	switch {
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid article ID")
		return
	case errors.Is(err, artUC.ErrInvalidAction):
		respond.Error(w, http.StatusBadRequest, "Invalid action")
		return
	case errors.Is(err, entity.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Article not found")
		return
	case err != nil:
		respond.Fail(w, http.StatusInternalServerError, "Failed to update "+h.counter, err)
		return
	}
	metrics.RecordEngagement(h.counter, req.Action)
	respond.Success(w, http.StatusOK, map[string]any{h.counter: n})
}

type LikeHandler struct{ Svc *artUC.Service }

// ServeHTTP いいね
// @Summary      Like or unlike an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body body reactionRequest true "action: like | unlike"
// @Success      200 {object} map[string]any "{success:true, likes:n}"
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/articles/like [post]
func (h LikeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reaction{apply: h.Svc.Like, counter: entity.CounterLikes}.serve(w, r)
}

type BookmarkHandler struct{ Svc *artUC.Service }

// ServeHTTP ブックマーク
// @Summary      Add or remove a bookmark
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body body reactionRequest true "action: add | remove"
// @Success      200 {object} map[string]any "{success:true, bookmarks:n}"
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/articles/bookmark [post]
func (h BookmarkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reaction{apply: h.Svc.Bookmark, counter: entity.CounterBookmarks}.serve(w, r)
}
