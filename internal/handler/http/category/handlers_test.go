package category_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-website/internal/domain/entity"
	"news-website/internal/handler/http/category"
	"news-website/internal/handler/http/handlertest"
	"news-website/internal/handler/http/respond"
	catUC "news-website/internal/usecase/category"
)

const (
	idA = "65f0c0ffee0000000000000a"
	idX = "65f0c0ffee00000000000fff"
)

type stubRepo struct{ data map[string]*entity.Category }

func (s *stubRepo) List(context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range s.data {
		out = append(out, c)
	}
	return out, nil
}
func (s *stubRepo) ListActive(ctx context.Context) ([]*entity.Category, error) { return s.List(ctx) }
func (s *stubRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = idX
	s.data[c.ID] = c
	return nil
}
func (s *stubRepo) Update(_ context.Context, c *entity.Category) (*entity.Category, error) {
	old, ok := s.data[c.ID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	c.CreatedAt = old.CreatedAt
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

func setup(t *testing.T) (*http.ServeMux, *stubRepo, handlertest.Auth) {
	t.Helper()
	repo := &stubRepo{data: map[string]*entity.Category{
		idA: {ID: idA, Name: "ipo", IsActive: true, Keywords: []string{"listing"}},
	}}
	a := handlertest.NewAuth(t)
	mux := http.NewServeMux()
	category.Register(mux, &catUC.Service{Repo: repo}, a.Guard)
	return mux, repo, a
}

func TestList(t *testing.T) {
	mux, _, _ := setup(t)
	rec := handlertest.Do(t, mux, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := handlertest.Decode[[]entity.Category](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "ipo", got[0].Name)
}

func TestCreate(t *testing.T) {
	mux, repo, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodPost, "/api/categories",
		map[string]any{"name": " economy ", "keywords": []string{"Rates", "rates", "GDP"}}, a.Admin)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := handlertest.Decode[entity.Category](t, rec)
	assert.Equal(t, idX, got.ID)
	assert.Equal(t, "economy", got.Name)
	assert.True(t, got.IsActive, "isActive defaults to true")
	assert.Equal(t, repo.data[idX].Keywords, got.Keywords)
}

func TestCreate_Validation(t *testing.T) {
	mux, _, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodPost, "/api/categories", map[string]any{"isActive": false}, a.Admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category name is required")
}

func TestWrites_RequireAdmin(t *testing.T) {
	mux, _, a := setup(t)
	for _, token := range []string{"", a.Editor} {
		rec := handlertest.Do(t, mux, http.MethodPost, "/api/categories", map[string]any{"name": "x"}, token)
		assert.Contains(t, []int{http.StatusUnauthorized, http.StatusForbidden}, rec.Code)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name string
		id   string
		code int
		msg  string
	}{
		{"ok", idA, http.StatusOK, ""},
		{"bad id", "123", http.StatusBadRequest, "Invalid category ID"},
		{"missing", idX, http.StatusNotFound, "Category not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _, a := setup(t)
			rec := handlertest.Do(t, mux, http.MethodPut, "/api/categories/"+tt.id,
				map[string]any{"name": "ipo", "isActive": false}, a.Admin)
			require.Equal(t, tt.code, rec.Code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, handlertest.Decode[respond.ErrorBody](t, rec).Error)
				return
			}
			assert.False(t, handlertest.Decode[entity.Category](t, rec).IsActive)
		})
	}
}

func TestDelete(t *testing.T) {
	mux, repo, a := setup(t)
	rec := handlertest.Do(t, mux, http.MethodDelete, "/api/categories/"+idA, nil, a.Admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Empty(t, repo.data)

	rec = handlertest.Do(t, mux, http.MethodDelete, "/api/categories/"+idA, nil, a.Admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
