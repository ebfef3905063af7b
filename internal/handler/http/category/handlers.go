// Package category provides the HTTP handlers for article categories.
package category

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	catUC "news-website/internal/usecase/category"
)

func fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case respond.IfValidation(w, err):
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid category ID")
	case errors.Is(err, catUC.ErrCategoryNotFound):
		respond.Error(w, http.StatusNotFound, "Category not found")
	default:
		respond.Fail(w, http.StatusInternalServerError, msg, err)
	}
}

type ListHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ一覧
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {array}  entity.Category
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Svc.List(r.Context())
	if err != nil {
		fail(w, err, "Failed to fetch categories")
		return
	}
	if cats == nil {
		cats = []*entity.Category{}
	}
	respond.JSON(w, http.StatusOK, cats)
}

type CreateHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ作成
// @Summary      Create category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body catUC.Input true "isActive defaults to true"
// @Success      201 {object} entity.Category
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in catUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	c, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		fail(w, err, "Failed to create category")
		return
	}
	respond.JSON(w, http.StatusCreated, c)
}

type UpdateHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ更新
// @Summary      Update category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path string      true "ObjectId"
// @Param        category body catUC.Input true "replacement fields"
// @Success      200 {object} entity.Category
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/categories/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in catUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	c, err := h.Svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		fail(w, err, "Failed to update category")
		return
	}
	respond.JSON(w, http.StatusOK, c)
}

type DeleteHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ削除
// @Summary      Delete category
// @Tags         categories
// @Security     BearerAuth
// @Param        id path string true "ObjectId"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/categories/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, err, "Failed to delete category")
		return
	}
	respond.Success(w, http.StatusOK, nil)
}
