// Package scrapconfig provides the HTTP handlers for scrape configurations,
// the per-source settings consumed by the scrape worker.
package scrapconfig

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	cfgUC "news-website/internal/usecase/scrapconfig"
)

func fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case respond.IfValidation(w, err):
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid configuration ID format")
	case errors.Is(err, cfgUC.ErrConfigNotFound):
		respond.Error(w, http.StatusNotFound, "Configuration not found")
	default:
		respond.Fail(w, http.StatusInternalServerError, msg, err)
	}
}

type ListHandler struct{ Svc *cfgUC.Service }

// ServeHTTP スクレイピング設定一覧
// @Summary      List scrape configurations
// @Tags         scrap-config
// @Produce      json
// @Success      200 {array} entity.ScrapConfig
// @Router       /api/scrap-config [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfgs, err := h.Svc.List(r.Context())
	if err != nil {
		fail(w, err, "Failed to fetch configurations")
		return
	}
	if cfgs == nil {
		cfgs = []*entity.ScrapConfig{}
	}
	respond.JSON(w, http.StatusOK, cfgs)
}

type CreateHandler struct{ Svc *cfgUC.Service }

// ServeHTTP スクレイピング設定作成
// @Summary      Create scrape configuration
// @Tags         scrap-config
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        config body cfgUC.Input true "configuration"
// @Success      201 {object} map[string]any "{success, id, message}"
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/scrap-config [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in cfgUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	id, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		fail(w, err, "Failed to create configuration")
		return
	}
	respond.Success(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Configuration created successfully",
	})
}

type UpdateHandler struct{ Svc *cfgUC.Service }

// ServeHTTP スクレイピング設定更新
// @Summary      Update scrape configuration
// @Tags         scrap-config
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path string      true "ObjectId"
// @Param        config body cfgUC.Input true "configuration"
// @Success      200 {object} entity.ScrapConfig
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/scrap-config/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in cfgUC.Input
	if !respond.DecodeJSON(w, r, &in) {
		return
	}
	cfg, err := h.Svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		fail(w, err, "Failed to update configuration")
		return
	}
	respond.JSON(w, http.StatusOK, cfg)
}

type DeleteHandler struct{ Svc *cfgUC.Service }

// ServeHTTP スクレイピング設定削除
// @Summary      Delete scrape configuration
// @Tags         scrap-config
// @Security     BearerAuth
// @Param        id path string true "ObjectId"
// @Success      200 {object} map[string]any "{success, message}"
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/scrap-config/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, err, "Failed to delete configuration")
		return
	}
	respond.Success(w, http.StatusOK, map[string]any{"message": "Configuration deleted successfully"})
}
