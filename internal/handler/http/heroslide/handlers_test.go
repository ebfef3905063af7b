package heroslide_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/handlertest"
	"news-website/internal/handler/http/heroslide"
	"news-website/internal/handler/http/respond"
	slideUC "news-website/internal/usecase/heroslide"
)

const (
	idA = "65f0c0ffee0000000000000a"
	idX = "65f0c0ffee00000000000fff"
)

type stubRepo struct{ data map[string]*entity.HeroSlide }

func (s *stubRepo) List(context.Context) ([]*entity.HeroSlide, error) {
	var out []*entity.HeroSlide
	for _, h := range s.data {
		out = append(out, h)
	}
	return out, nil
}
func (s *stubRepo) Create(_ context.Context, h *entity.HeroSlide) error {
	h.ID = idX
	s.data[h.ID] = h
	return nil
}
func (s *stubRepo) Update(_ context.Context, h *entity.HeroSlide) (*entity.HeroSlide, error) {
	if _, ok := s.data[h.ID]; !ok {
		return nil, entity.ErrNotFound
	}
	s.data[h.ID] = h
	return h, nil
}
func (s *stubRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func setup(t *testing.T) (*http.ServeMux, *stubRepo, handlertest.Auth) {
	t.Helper()
	repo := &stubRepo{data: map[string]*entity.HeroSlide{idA: {ID: idA, Title: "Welcome"}}}
	a := handlertest.NewAuth(t)
	mux := http.NewServeMux()
	heroslide.Register(mux, &slideUC.Service{Repo: repo}, a.Guard)
	return mux, repo, a
}

func slide() map[string]string {
	return map[string]string{
		"title":       "Markets today",
		"tagline":     "What moved",
		"description": "A short daily digest.",
		"imageUrl":    "https://cdn.example.com/hero.jpg",
		"ctaLabel":    "Read",
		"ctaLink":     "https://example.com/digest",
	}
}

func TestCreate(t *testing.T) {
	mux, repo, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodPost, "/api/hero-slides", slide(), a.Editor)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"success":true,"id":"`+idX+`","message":"Slide created successfully"}`, rec.Body.String())
	assert.Equal(t, "Read", repo.data[idX].CTALabel)
}

func TestCreate_Validation(t *testing.T) {
	mux, _, a := setup(t)
	body := slide()
	body["ctaLink"] = "javascript:alert(1)"
	delete(body, "tagline")

	rec := handlertest.Do(t, mux, http.MethodPost, "/api/hero-slides", body, a.Admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tagline is required")
	assert.Contains(t, rec.Body.String(), "Invalid CTA URL")
}

func TestUpdate_NotFound(t *testing.T) {
	mux, _, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodPut, "/api/hero-slides/"+idX, slide(), a.Admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Slide not found", handlertest.Decode[respond.ErrorBody](t, rec).Error)
}

func TestDelete(t *testing.T) {
	mux, repo, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodDelete, "/api/hero-slides/"+idA, nil, a.Editor)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = handlertest.Do(t, mux, http.MethodDelete, "/api/hero-slides/"+idA, nil, a.Admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.data)

	rec = handlertest.Do(t, mux, http.MethodDelete, "/api/hero-slides/bad", nil, a.Admin)
	assert.Equal(t, "Invalid slide ID", handlertest.Decode[respond.ErrorBody](t, rec).Error)
}
