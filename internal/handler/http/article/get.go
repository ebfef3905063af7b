package article

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	"news-website/internal/observability/metrics"
	artUC "news-website/internal/usecase/article"
)

// LookupHeader tells the client which resolution step matched.
const LookupHeader = "X-Lookup-Strategy"

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細
// @Summary      Get article by id
// @Tags         articles
// @Produce      json
// @Param        id path string true "ObjectId"
// @Success      200 {object} entity.Article
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid article ID format")
		return
	case errors.Is(err, entity.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Article not found")
		return
	case err != nil:
		respond.Fail(w, http.StatusInternalServerError, "Failed to fetch article", err)
		return
	}
	respond.JSON(w, http.StatusOK, a)
}

type LookupHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事解決（ID → slug/タイトル → 部分一致 → 最新）
// @Summary      Resolve article from a loose identifier
// @Description  Tries the identifier as an id, then exact slug/title, then a title pattern, then falls back to the latest article.
// @Tags         articles
// @Produce      json
// @Param        identifier path string true "id, slug or title words"
// @Success      200 {object} entity.Article
// @Header       200 {string} X-Lookup-Strategy "id | field | regex | latest"
// @Failure      404 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/lookup/{identifier} [get]
func (h LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.Resolve(r.Context(), r.PathValue("identifier"))
	switch {
	case errors.Is(err, entity.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Article not found")
		return
	case err != nil:
		respond.Fail(w, http.StatusInternalServerError, "Failed to fetch article", err)
		return
	}
	metrics.RecordLookup(string(res.Strategy))
	w.Header().Set(LookupHeader, string(res.Strategy))
	respond.JSON(w, http.StatusOK, res.Article)
}
