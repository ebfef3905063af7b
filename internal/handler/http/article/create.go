package article

import (
	"encoding/json"
	"net/http"

	"news-website/internal/handler/http/respond"
	"news-website/internal/observability/metrics"
	artUC "news-website/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      Create article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body artUC.CreateInput true "article"
// @Success      201 {object} createResponse
// @Failure      400 {object} respond.ErrorBody "Validation failed"
// @Failure      401 {object} respond.ErrorBody
// @Failure      403 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in artUC.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		if respond.IfValidation(w, err) {
			return
		}
		respond.Fail(w, http.StatusInternalServerError, "Failed to create article", err)
		return
	}
	metrics.RecordArticleCreated("admin")
	respond.JSON(w, http.StatusCreated, createResponse{
		Success: true,
		ID:      id,
		Message: "Article created successfully",
	})
}
