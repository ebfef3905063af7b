// Package category provides use cases for the article categories managed from
// the admin dashboard.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
	"news-website/internal/validation"
)

// ErrCategoryNotFound indicates that the requested category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// Input is the body accepted for both create and update.
type Input struct {
	Name     string   `json:"name" validate:"required"`
	IsActive *bool    `json:"isActive"`
	Keywords []string `json:"keywords" validate:"omitempty,dive,notblank"`
}

var inputMessages = validation.Messages{
	"name.required":       "Category name is required",
	"keywords[].notblank": "Keyword cannot be empty",
}

type Service struct {
	Repo repository.CategoryRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	cats, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*entity.Category, error) {
	if err := validation.Struct(in, inputMessages); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &entity.Category{
		Name:      strings.TrimSpace(in.Name),
		IsActive:  in.IsActive == nil || *in.IsActive,
		Keywords:  normalizeKeywords(in.Keywords),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*entity.Category, error) {
	if !entity.IsValidID(id) {
		return nil, entity.ErrInvalidID
	}
	if err := validation.Struct(in, inputMessages); err != nil {
		return nil, err
	}
	if in.IsActive == nil {
		return nil, entity.ValidationErrors{{Field: "isActive", Message: "Active status is required"}}
	}
	c, err := s.Repo.Update(ctx, &entity.Category{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		IsActive:  *in.IsActive,
		Keywords:  normalizeKeywords(in.Keywords),
		UpdatedAt: time.Now().UTC(),
	})
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// normalizeKeywords trims, lowercases and de-duplicates keywords, keeping the
// first occurrence order. A nil slice becomes empty so it serializes as [].
func normalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
