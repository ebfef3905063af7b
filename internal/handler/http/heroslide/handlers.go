// Package heroslide provides the HTTP handlers for the landing page carousel.
package heroslide

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	slideUC "news-website/internal/usecase/heroslide"
)

func fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case respond.IfValidation(w, err):
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid slide ID")
	case errors.Is(err, slideUC.ErrSlideNotFound):
		respond.Error(w, http.StatusNotFound, "Slide not found")
	default:
		respond.Fail(w, http.StatusInternalServerError, msg, err)
	}
}

type ListHandler struct{ Svc *slideUC.Service }

// ServeHTTP スライド一覧
// @Summary      List hero slides
// @Tags         hero-slides
// @Produce      json
// @Success      200 {array} entity.HeroSlide
// @Router       /api/hero-slides [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Svc.List(r.Context())
	if err != nil {
		fail(w, err, "Failed to fetch slides")
		return
	}
	if slides == nil {
		slides = []*entity.HeroSlide{}
	}
	respond.JSON(w, http.StatusOK, slides)
}

type CreateHandler struct{ Svc *slideUC.Service }

// ServeHTTP スライド作成
// @Summary      Create hero slide
// @Tags         hero-slides
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slide body slideUC.Input true "slide"
// @Success      201 {object} map[string]any "{success, id, message}"
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/hero-slides [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in slideUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	id, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		fail(w, err, "Failed to create slide")
		return
	}
	respond.Success(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Slide created successfully",
	})
}

type UpdateHandler struct{ Svc *slideUC.Service }

// ServeHTTP スライド更新
// @Summary      Update hero slide
// @Tags         hero-slides
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path string        true "ObjectId"
// @Param        slide body slideUC.Input true "slide"
// @Success      200 {object} entity.HeroSlide
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/hero-slides/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in slideUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	slide, err := h.Svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		fail(w, err, "Failed to update slide")
		return
	}
	respond.JSON(w, http.StatusOK, slide)
}

type DeleteHandler struct{ Svc *slideUC.Service }

// ServeHTTP スライド削除
// @Summary      Delete hero slide
// @Tags         hero-slides
// @Security     BearerAuth
// @Param        id path string true "ObjectId"
// @Success      200 {object} map[string]any
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/hero-slides/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, err, "Failed to delete slide")
		return
	}
	respond.Success(w, http.StatusOK, map[string]any{"message": "Slide deleted successfully"})
}
