package blogpost

import (
	"errors"
	"net/http"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/respond"
	postUC "news-website/internal/usecase/blogpost"
)

// formError maps parse failures shared by create and update. It reports
// false when err is not a form problem.
func formError(w http.ResponseWriter, err error) bool {
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, errTagsFormat):
		respond.Error(w, http.StatusBadRequest, "Invalid tags format")
	case errors.Is(err, errAuthorFormat):
		respond.Error(w, http.StatusBadRequest, "Invalid author format")
	case errors.Is(err, postUC.ErrImageTooLarge):
		respond.Error(w, http.StatusRequestEntityTooLarge, "Image must be 5MB or smaller")
	case errors.As(err, &tooBig):
		respond.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, postUC.ErrTitleContentRequired):
		respond.Error(w, http.StatusBadRequest, "Title and content are required")
	default:
		return false
	}
	return true
}

type ListHandler struct{ Svc *postUC.Service }

// ServeHTTP ブログ一覧
// @Summary      List blog posts
// @Description  Newest first, at most 20 posts.
// @Tags         blogposts
// @Produce      json
// @Success      200 {array}  entity.BlogPost
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/blogposts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "Failed to fetch posts", err)
		return
	}
	if posts == nil {
		posts = []*entity.BlogPost{}
	}
	respond.JSON(w, http.StatusOK, posts)
}

type GetHandler struct{ Svc *postUC.Service }

// ServeHTTP ブログ詳細
// @Summary      Get blog post by id
// @Tags         blogposts
// @Produce      json
// @Param        id path string true "ObjectId"
// @Success      200 {object} entity.BlogPost
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/blogposts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	post, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	writePost(w, post, err)
}

type SlugHandler struct{ Svc *postUC.Service }

// ServeHTTP slug からブログ取得
// @Summary      Get blog post by slug
// @Tags         blogposts
// @Produce      json
// @Param        slug path string true "slugified title"
// @Success      200 {object} entity.BlogPost
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/blogposts/slug/{slug} [get]
func (h SlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	post, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	writePost(w, post, err)
}

func writePost(w http.ResponseWriter, post *entity.BlogPost, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid post ID")
	case errors.Is(err, postUC.ErrPostNotFound):
		respond.Error(w, http.StatusNotFound, "Post not found")
	case err != nil:
		respond.Fail(w, http.StatusInternalServerError, "Failed to fetch post", err)
	default:
		respond.JSON(w, http.StatusOK, post)
	}
}

type CreateHandler struct{ Svc *postUC.Service }

// ServeHTTP ブログ作成
// @Summary      Create blog post
// @Tags         blogposts
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        title       formData string true  "title"
// @Param        content     formData string true  "content"
// @Param        tags        formData string false "JSON array of tags"
// @Param        subtitle    formData string false "subtitle"
// @Param        author      formData string false "JSON {name, avatar}"
// @Param        readingTime formData string false "e.g. 4 min read"
// @Param        image       formData file   false "image, 5MB max"
// @Success      200 {object} idResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      413 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/blogposts [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := parseForm(w, r)
	if err != nil {
		if !formError(w, err) {
			respond.Fail(w, http.StatusBadRequest, "Invalid form data", err)
		}
		return
	}

	id, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		if !formError(w, err) {
			respond.Fail(w, http.StatusInternalServerError, "Failed to create post", err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, idResponse{Success: true, ID: id})
}

type UpdateHandler struct{ Svc *postUC.Service }

// ServeHTTP ブログ更新（画像なしなら既存を維持）
// @Summary      Update blog post
// @Tags         blogposts
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path     string true  "ObjectId"
// @Param        title   formData string true  "title"
// @Param        content formData string true  "content"
// @Param        tags    formData string false "JSON array of tags"
// @Param        image   formData file   false "replacement image"
// @Success      200 {object} idResponse
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/blogposts/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !entity.IsValidID(id) {
		respond.Error(w, http.StatusBadRequest, "Invalid post ID")
		return
	}
	in, err := parseForm(w, r)
	if err != nil {
		if !formError(w, err) {
			respond.Fail(w, http.StatusBadRequest, "Invalid form data", err)
		}
		return
	}

	err = h.Svc.Update(r.Context(), id, in)
	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, idResponse{Success: true, ID: id})
	case formError(w, err):
	case errors.Is(err, entity.ErrNoChanges):
		respond.Error(w, http.StatusBadRequest, "No changes made")
	case errors.Is(err, postUC.ErrPostNotFound):
		respond.Error(w, http.StatusNotFound, "Post not found")
	default:
		respond.Fail(w, http.StatusInternalServerError, "Failed to update post", err)
	}
}

type DeleteHandler struct{ Svc *postUC.Service }

// ServeHTTP ブログ削除
// @Summary      Delete blog post
// @Tags         blogposts
// @Security     BearerAuth
// @Param        id path string true "ObjectId"
// @Success      200 {object} map[string]bool "{success:true}"
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/blogposts/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, entity.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid post ID")
	case errors.Is(err, postUC.ErrDeleteFailed):
		respond.Error(w, http.StatusBadRequest, "Failed to delete post")
	case err != nil:
		respond.Fail(w, http.StatusInternalServerError, "Failed to delete post", err)
	default:
		respond.Success(w, http.StatusOK, nil)
	}
}
