// Package comment provides the HTTP handlers for reader comments on blog posts.
// Anyone may list and post; editing and removal are moderation actions.
package comment

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	commentUC "news-website/internal/usecase/comment"
)

func fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case respond.IfValidation(w, err):
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid comment ID")
	case errors.Is(err, commentUC.ErrCommentNotFound):
		respond.Error(w, http.StatusNotFound, "Comment not found")
	default:
		respond.Fail(w, http.StatusInternalServerError, msg, err)
	}
}

type ListHandler struct{ Svc *commentUC.Service }

// ServeHTTP コメント一覧
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        blogPostId query string false "restrict to one post"
// @Success      200 {array}  entity.Comment
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Svc.List(r.Context(), r.URL.Query().Get("blogPostId"))
	if errors.Is(err, entity.ErrInvalidID) {
		respond.Error(w, http.StatusBadRequest, "Invalid blog post ID")
		return
	}
	if err != nil {
		fail(w, err, "Failed to fetch comments")
		return
	}
	if cs == nil {
		cs = []*entity.Comment{}
	}
	respond.JSON(w, http.StatusOK, cs)
}

type CreateHandler struct{ Svc *commentUC.Service }

// ServeHTTP コメント投稿
// @Summary      Post a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        comment body commentUC.CreateInput true "comment"
// @Success      201 {object} entity.Comment
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in commentUC.CreateInput
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	c, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		fail(w, err, "Failed to create comment")
		return
	}
	respond.JSON(w, http.StatusCreated, c)
}

type UpdateHandler struct{ Svc *commentUC.Service }

// ServeHTTP コメント編集
// @Summary      Edit a comment
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string                true "ObjectId"
// @Param        comment body commentUC.UpdateInput true "new content"
// @Success      200 {object} entity.Comment
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/comments/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in commentUC.UpdateInput
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	c, err := h.Svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		fail(w, err, "Failed to update comment")
		return
	}
	respond.JSON(w, http.StatusOK, c)
}

type DeleteHandler struct{ Svc *commentUC.Service }

// ServeHTTP コメント削除
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id path string true "ObjectId"
// @Success      200 {object} map[string]bool
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/comments/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, err, "Failed to delete comment")
		return
	}
	respond.Success(w, http.StatusOK, nil)
}
