package scrapconfig_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-website/internal/domain/entity"
	scUC "news-website/internal/usecase/scrapconfig"
)

type stubRepo struct {
	data map[string]*entity.ScrapConfig
}

func (s *stubRepo) List(context.Context) ([]*entity.ScrapConfig, error) {
	var out []*entity.ScrapConfig
	for _, c := range s.data {
		out = append(out, c)
	}
	return out, nil
}
func (s *stubRepo) ListActive(ctx context.Context) ([]*entity.ScrapConfig, error) { return s.List(ctx) }
func (s *stubRepo) Create(_ context.Context, c *entity.ScrapConfig) error {
	c.ID = entity.NewID()
	s.data[c.ID] = c
	return nil
}
func (s *stubRepo) Update(_ context.Context, c *entity.ScrapConfig) (*entity.ScrapConfig, error) {
	cur, ok := s.data[c.ID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	c.CreatedAt = cur.CreatedAt
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

func TestService_Create_validation(t *testing.T) {
	svc := scUC.Service{Repo: &stubRepo{data: map[string]*entity.ScrapConfig{}}}

	tests := []struct {
		name  string
		in    scUC.Input
		field string
		msg   string
	}{
		{
			name:  "missing category",
			in:    scUC.Input{Keywords: []string{"ipo"}, SourceURL: "https://example.com/feed"},
			field: "category",
			msg:   "Category is required",
		},
		{
			name:  "empty keyword",
			in:    scUC.Input{Category: "Markets", Keywords: []string{"ipo", ""}, SourceURL: "https://example.com/feed"},
			field: "keywords[1]",
			msg:   "Keyword cannot be empty",
		},
		{
			name:  "no keywords",
			in:    scUC.Input{Category: "Markets", SourceURL: "https://example.com/feed"},
			field: "keywords",
			msg:   "At least one keyword is required",
		},
		{
			name:  "bad source url",
			in:    scUC.Input{Category: "Markets", Keywords: []string{"ipo"}, SourceURL: "example"},
			field: "sourceUrl",
			msg:   "Invalid source URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			ve, ok := entity.AsValidationErrors(err)
			require.True(t, ok, "got %v", err)
			require.Len(t, ve, 1)
			assert.Equal(t, tt.field, ve[0].Field)
			assert.Equal(t, tt.msg, ve[0].Message)
		})
	}
}

func TestService_Lifecycle(t *testing.T) {
	stub := &stubRepo{data: map[string]*entity.ScrapConfig{}}
	svc := scUC.Service{Repo: stub}
	ctx := context.Background()

	id, err := svc.Create(ctx, scUC.Input{Category: "Markets", Keywords: []string{" ipo "}, SourceURL: "https://example.com/feed"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ipo"}, stub.data[id].Keywords)
	assert.True(t, stub.data[id].IsActive)

	off := false
	got, err := svc.Update(ctx, id, scUC.Input{Category: "Tech", Keywords: []string{"ai"}, SourceURL: "https://example.com/rss", IsActive: &off})
	require.NoError(t, err)
	assert.Equal(t, "Tech", got.Category)
	assert.False(t, got.IsActive)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = svc.Update(ctx, id, scUC.Input{Category: "Tech", Keywords: []string{"ai"}, SourceURL: "https://example.com/rss"})
	ve, ok := entity.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "isActive", ve[0].Field)
	assert.False(t, stub.data[id].IsActive)

	_, err = svc.Update(ctx, entity.NewID(), scUC.Input{Category: "x", Keywords: []string{"y"}, SourceURL: "https://example.com", IsActive: &off})
	assert.True(t, errors.Is(err, scUC.ErrConfigNotFound))

	require.NoError(t, svc.Delete(ctx, id))
	assert.True(t, errors.Is(svc.Delete(ctx, id), scUC.ErrConfigNotFound))
}
