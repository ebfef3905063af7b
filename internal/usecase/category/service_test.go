package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"news-website/internal/domain/entity"
)

type stubRepo struct {
	data map[string]*entity.Category
}

func (s *stubRepo) List(context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range s.data {
		out = append(out, c)
	}
	return out, nil
}
func (s *stubRepo) ListActive(ctx context.Context) ([]*entity.Category, error) { return s.List(ctx) }
func (s *stubRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = entity.NewID()
	s.data[c.ID] = c
	return nil
}
func (s *stubRepo) Update(_ context.Context, c *entity.Category) (*entity.Category, error) {
	cur, ok := s.data[c.ID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cur.Name, cur.IsActive, cur.Keywords, cur.UpdatedAt = c.Name, c.IsActive, c.Keywords, c.UpdatedAt
	return cur, nil
}
func (s *stubRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func TestService_CRUD(t *testing.T) {
	stub := &stubRepo{data: map[string]*entity.Category{}}
	svc := Service{Repo: stub}
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Name: ""})
	ve, ok := entity.AsValidationErrors(err)
	if !ok || ve[0].Message != "Category name is required" {
		t.Fatalf("want name validation error, got %v", err)
	}

	c, err := svc.Create(ctx, Input{Name: " Markets ", Keywords: []string{"Stocks", "stocks", "IPO"}})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if c.Name != "Markets" || !c.IsActive {
		t.Errorf("unexpected category: %#v", c)
	}
	if diff := cmp.Diff([]string{"stocks", "ipo"}, c.Keywords); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}

	inactive := false
	got, err := svc.Update(ctx, c.ID, Input{Name: "Markets", IsActive: &inactive})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.IsActive {
		t.Error("isActive not updated")
	}
	_, err = svc.Update(ctx, c.ID, Input{Name: "Markets"})
	if _, ok := entity.AsValidationErrors(err); !ok {
		t.Fatalf("missing isActive: want validation error, got %v", err)
	}
	if stub.data[c.ID].IsActive {
		t.Error("category re-activated by update without isActive")
	}
	if _, err := svc.Update(ctx, entity.NewID(), Input{Name: "x", IsActive: &inactive}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, "nope", Input{Name: "x"}); !errors.Is(err, entity.ErrInvalidID) {
		t.Fatalf("want ErrInvalidID, got %v", err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(ctx, c.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("second delete: want ErrCategoryNotFound, got %v", err)
	}
}

func TestNormalizeKeywords(t *testing.T) {
	got := normalizeKeywords([]string{" AI ", "", "ai", "Chips"})
	if diff := cmp.Diff([]string{"ai", "chips"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := normalizeKeywords(nil); got == nil || len(got) != 0 {
		t.Errorf("nil input should give empty slice, got %#v", got)
	}
}
