// Package source provides the HTTP handlers for the source URLs registered
// in the admin dashboard.
package source

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	srcUC "news-website/internal/usecase/source"
)

func fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case respond.IfValidation(w, err):
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid URL ID")
	case errors.Is(err, srcUC.ErrSourceNotFound):
		respond.Error(w, http.StatusNotFound, "URL not found")
	default:
		respond.Fail(w, http.StatusInternalServerError, msg, err)
	}
}

type ListHandler struct{ Svc *srcUC.Service }

// ServeHTTP ソース一覧取得
// @Summary      List source URLs
// @Tags         urls
// @Produce      json
// @Success      200 {array} entity.SourceURL
// @Router       /api/urls [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urls, err := h.Svc.List(r.Context())
	if err != nil {
		fail(w, err, "Failed to fetch URLs")
		return
	}
	if urls == nil {
		urls = []*entity.SourceURL{}
	}
	respond.JSON(w, http.StatusOK, urls)
}

type CreateHandler struct{ Svc *srcUC.Service }

// ServeHTTP ソース作成
// @Summary      Register source URL
// @Tags         urls
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        url body srcUC.Input true "source"
// @Success      201 {object} entity.SourceURL
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/urls [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in srcUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	u, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		fail(w, err, "Failed to create URL")
		return
	}
	respond.JSON(w, http.StatusCreated, u)
}

type UpdateHandler struct{ Svc *srcUC.Service }

// ServeHTTP ソース更新
// @Summary      Update source URL
// @Tags         urls
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path string      true "ObjectId"
// @Param        url body srcUC.Input true "source"
// @Success      200 {object} entity.SourceURL
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/urls/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in srcUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	u, err := h.Svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		fail(w, err, "Failed to update URL")
		return
	}
	respond.JSON(w, http.StatusOK, u)
}

type DeleteHandler struct{ Svc *srcUC.Service }

// ServeHTTP ソース削除
// @Summary      Delete source URL
// @Tags         urls
// @Security     BearerAuth
// @Param        id path string true "ObjectId"
// @Success      200 {object} map[string]bool
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/urls/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, err, "Failed to delete URL")
		return
	}
	respond.Success(w, http.StatusOK, nil)
}
