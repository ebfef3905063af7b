// Package keyword provides use cases for the matching keywords used by the scraper.
package keyword

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

// ErrKeywordNotFound indicates that the requested keyword does not exist.
var ErrKeywordNotFound = errors.New("keyword not found")

// Input is the body accepted for both create and update.
type Input struct {
	Word     string `json:"word" validate:"required"`
	Category string `json:"category"`
	IsActive *bool  `json:"isActive"`
}

var inputMessages = validation.Messages{
	"word.required": "Keyword is required",
}

type Service struct {
	Repo repository.KeywordRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.Keyword, error) {
	kws, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	return kws, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*entity.Keyword, error) {
	if err := validation.Struct(in, inputMessages); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	k := &entity.Keyword{
		Word:      strings.TrimSpace(in.Word),
		Category:  strings.TrimSpace(in.Category),
		IsActive:  in.IsActive == nil || *in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, k); err != nil {
		return nil, fmt.Errorf("create keyword: %w", err)
	}
	return k, nil
}

// Update overwrites a keyword. Unlike the other admin resources it does not
// return the stored document.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	if err := validation.Struct(in, inputMessages); err != nil {
		return err
	}
	if in.IsActive == nil {
		return entity.ValidationErrors{{Field: "isActive", Message: "Active status is required"}}
	}
	err := s.Repo.Update(ctx, &entity.Keyword{
		ID:        id,
		Word:      strings.TrimSpace(in.Word),
		Category:  strings.TrimSpace(in.Category),
		IsActive:  *in.IsActive,
		UpdatedAt: time.Now().UTC(),
	})
	if errors.Is(err, entity.ErrNotFound) {
		return ErrKeywordNotFound
	}
	if err != nil {
		return fmt.Errorf("update keyword: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrKeywordNotFound
	}
	if err != nil {
		return fmt.Errorf("delete keyword: %w", err)
	}
	return nil
}
