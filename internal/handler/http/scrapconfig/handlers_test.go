package scrapconfig_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/handlertest"
	"news-website/internal/handler/http/respond"
	"news-website/internal/handler/http/scrapconfig"
	cfgUC "news-website/internal/usecase/scrapconfig"
)

const (
	idA = "65f0c0ffee0000000000000a"
	idX = "65f0c0ffee00000000000fff"
)

type stubRepo struct{ data map[string]*entity.ScrapConfig }

func (s *stubRepo) List(context.Context) ([]*entity.ScrapConfig, error) {
	var out []*entity.ScrapConfig
	for _, c := range s.data {
		out = append(out, c)
	}
	return out, nil
}
func (s *stubRepo) ListActive(ctx context.Context) ([]*entity.ScrapConfig, error) { return s.List(ctx) }
func (s *stubRepo) Create(_ context.Context, c *entity.ScrapConfig) error {
	c.ID = idX
	s.data[c.ID] = c
	return nil
}
func (s *stubRepo) Update(_ context.Context, c *entity.ScrapConfig) (*entity.ScrapConfig, error) {
	if _, ok := s.data[c.ID]; !ok {
		return nil, entity.ErrNotFound
	}
	s.data[c.ID] = c
	return c, nil
}
func (s *stubRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}
func (s *stubRepo) MarkRun(context.Context, string, time.Time) error { return nil }

func setup(t *testing.T) (*http.ServeMux, *stubRepo, handlertest.Auth) {
	t.Helper()
	repo := &stubRepo{data: map[string]*entity.ScrapConfig{
		idA: {ID: idA, Category: "ipo", Keywords: []string{"ipo"}, SourceURL: "https://example.com/feed", IsActive: true},
	}}
	a := handlertest.NewAuth(t)
	mux := http.NewServeMux()
	scrapconfig.Register(mux, &cfgUC.Service{Repo: repo}, a.Guard)
	return mux, repo, a
}

func validInput() map[string]any {
	return map[string]any{
		"category":  "economy",
		"keywords":  []string{" rates ", "inflation"},
		"sourceUrl": "https://example.com/economy.xml",
	}
}

func TestCreate(t *testing.T) {
	mux, repo, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodPost, "/api/scrap-config", validInput(), a.Admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"success":true,"id":"`+idX+`","message":"Configuration created successfully"}`, rec.Body.String())
	assert.Equal(t, []string{"rates", "inflation"}, repo.data[idX].Keywords)
}

func TestCreate_Validation(t *testing.T) {
	mux, _, a := setup(t)
	body := validInput()
	body["keywords"] = []string{}
	rec := handlertest.Do(t, mux, http.MethodPost, "/api/scrap-config", body, a.Admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "At least one keyword is required")
}

func TestCreate_EditorForbidden(t *testing.T) {
	mux, _, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodPost, "/api/scrap-config", validInput(), a.Editor)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdate(t *testing.T) {
	mux, _, a := setup(t)
	body := validInput()
	body["isActive"] = false
	rec := handlertest.Do(t, mux, http.MethodPut, "/api/scrap-config/"+idA, body, a.Admin)
	require.Equal(t, http.StatusOK, rec.Code)
	got := handlertest.Decode[entity.ScrapConfig](t, rec)
	assert.Equal(t, "economy", got.Category)
	assert.False(t, got.IsActive)

	rec = handlertest.Do(t, mux, http.MethodPut, "/api/scrap-config/abc", body, a.Admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid configuration ID format", handlertest.Decode[respond.ErrorBody](t, rec).Error)
}

func TestDelete(t *testing.T) {
	mux, _, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodDelete, "/api/scrap-config/"+idA, nil, a.Admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Configuration deleted successfully"}`, rec.Body.String())

	rec = handlertest.Do(t, mux, http.MethodDelete, "/api/scrap-config/"+idA, nil, a.Admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Configuration not found", handlertest.Decode[respond.ErrorBody](t, rec).Error)
}
