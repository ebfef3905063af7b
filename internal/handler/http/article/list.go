package article

import (
	"errors"
	"net/http"
	"strconv"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	artUC "news-website/internal/usecase/article"
)

// ListCacheControl lets the CDN serve lists for five minutes.
const ListCacheControl = "public, s-maxage=300, stale-while-revalidate=59"

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事一覧
// @Summary      List articles
// @Description  Newest first. category filters, exclude drops one article (related-articles widget).
// @Tags         articles
// @Produce      json
// @Param        category query string false "category name"
// @Param        exclude  query string false "article id to omit"
// @Param        limit    query int    false "max items (default 10, capped at 50)"
// @Success      200 {array}  ListItem
// @Failure      400 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.ArticleFilter{
		Category:  q.Get("category"),
		ExcludeID: q.Get("exclude"),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = n
	}

	articles, err := h.Svc.List(r.Context(), filter)
	switch {
	case errors.Is(err, artUC.ErrInvalidLimit):
		respond.Error(w, http.StatusBadRequest, "Invalid limit")
		return
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid exclude ID")
		return
	case err != nil:
		respond.Fail(w, http.StatusInternalServerError, "Failed to fetch articles", err)
		return
	}

	out := make([]ListItem, 0, len(articles))
	for _, a := range articles {
		out = append(out, toListItem(a))
	}
	w.Header().Set("Cache-Control", ListCacheControl)
	respond.JSON(w, http.StatusOK, out)
}
