// Package scrapconfig provides use cases for the scrape configurations that
// drive the worker: which source to crawl, which keywords select an item and
// which category matched items are filed under.
package scrapconfig

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

// ErrConfigNotFound indicates that the requested configuration does not exist.
var ErrConfigNotFound = errors.New("configuration not found")

// Input is the body accepted for both create and update.
type Input struct {
	Category  string   `json:"category" validate:"required"`
	Keywords  []string `json:"keywords" validate:"required,min=1,dive,notblank"`
	SourceURL string   `json:"sourceUrl" validate:"httpurl"`
	IsActive  *bool    `json:"isActive"`
}

var inputMessages = validation.Messages{
	"category.required":   "Category is required",
	"keywords.required":   "At least one keyword is required",
	"keywords.min":        "At least one keyword is required",
	"keywords[].notblank": "Keyword cannot be empty",
	"sourceUrl.httpurl":   "Invalid source URL",
}

type Service struct {
	Repo repository.ScrapConfigRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.ScrapConfig, error) {
	cfgs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scrap configs: %w", err)
	}
	return cfgs, nil
}

// Create validates the input and stores a new configuration, returning its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if err := validation.Struct(in, inputMessages); err != nil {
		return "", err
	}
	now := time.Now().UTC()
	cfg := &entity.ScrapConfig{
		Category:  strings.TrimSpace(in.Category),
		Keywords:  trimAll(in.Keywords),
		SourceURL: in.SourceURL,
		IsActive:  in.IsActive == nil || *in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, cfg); err != nil {
		return "", fmt.Errorf("create scrap config: %w", err)
	}
	return cfg.ID, nil
}

// Update overwrites a configuration and returns the stored document.
func (s *Service) Update(ctx context.Context, id string, in Input) (*entity.ScrapConfig, error) {
	if !entity.IsValidID(id) {
		return nil, entity.ErrInvalidID
	}
	if err := validation.Struct(in, inputMessages); err != nil {
		return nil, err
	}
	if in.IsActive == nil {
		return nil, entity.ValidationErrors{{Field: "isActive", Message: "Active status is required"}}
	}
	cfg, err := s.Repo.Update(ctx, &entity.ScrapConfig{
		ID:        id,
		Category:  strings.TrimSpace(in.Category),
		Keywords:  trimAll(in.Keywords),
		SourceURL: in.SourceURL,
		IsActive:  *in.IsActive,
		UpdatedAt: time.Now().UTC(),
	})
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update scrap config: %w", err)
	}
	return cfg, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrConfigNotFound
	}
	if err != nil {
		return fmt.Errorf("delete scrap config: %w", err)
	}
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
