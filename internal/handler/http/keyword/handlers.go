// Package keyword provides the HTTP handlers for scraper keywords.
package keyword

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	kwUC "news-website/internal/usecase/keyword"
)

func fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case respond.IfValidation(w, err):
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid keyword ID")
	case errors.Is(err, kwUC.ErrKeywordNotFound):
		respond.Error(w, http.StatusNotFound, "Keyword not found")
	default:
		respond.Fail(w, http.StatusInternalServerError, msg, err)
	}
}

type ListHandler struct{ Svc *kwUC.Service }

// ServeHTTP キーワード一覧
// @Summary      List keywords
// @Tags         keywords
// @Produce      json
// @Success      200 {array} entity.Keyword
// @Router       /api/keywords [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kws, err := h.Svc.List(r.Context())
	if err != nil {
		fail(w, err, "Failed to fetch keywords")
		return
	}
	if kws == nil {
		kws = []*entity.Keyword{}
	}
	respond.JSON(w, http.StatusOK, kws)
}

type CreateHandler struct{ Svc *kwUC.Service }

// ServeHTTP キーワード作成
// @Summary      Create keyword
// @Tags         keywords
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        keyword body kwUC.Input true "keyword"
// @Success      201 {object} map[string]any "{success:true, id}"
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/keywords [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in kwUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	k, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		fail(w, err, "Failed to create keyword")
		return
	}
	respond.Success(w, http.StatusCreated, map[string]any{"id": k.ID})
}

type UpdateHandler struct{ Svc *kwUC.Service }

// ServeHTTP キーワード更新
// @Summary      Update keyword
// @Tags         keywords
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string     true "ObjectId"
// @Param        keyword body kwUC.Input true "keyword"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/keywords/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in kwUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	if err := h.Svc.Update(r.Context(), r.PathValue("id"), in); err != nil {
		fail(w, err, "Failed to update keyword")
		return
	}
	respond.Success(w, http.StatusOK, nil)
}

type DeleteHandler struct{ Svc *kwUC.Service }

// ServeHTTP キーワード削除
// @Summary      Delete keyword
// @Tags         keywords
// @Security     BearerAuth
// @Param        id path string true "ObjectId"
// @Success      200 {object} map[string]bool
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/keywords/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, err, "Failed to delete keyword")
		return
	}
	respond.Success(w, http.StatusOK, nil)
}
