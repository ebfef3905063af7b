package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
	"news-website/internal/validation"
)

// Input is the body accepted for both create and update.
// A nil IsActive is stored as true.
type Input struct {
	URL      string `json:"url" validate:"httpurl"`
	IsActive *bool  `json:"isActive"`
}

var inputMessages = validation.Messages{
	"url.httpurl": "Invalid URL",
}

// Service provides source URL management use cases.
// It handles business logic for source operations and delegates persistence to the repository.
type Service struct {
	Repo repository.SourceURLRepository
}

// List retrieves all source URLs, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.SourceURL, error) {
	urls, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}
	return urls, nil
}

// Create validates the input and stores a new source URL.
func (s *Service) Create(ctx context.Context, in Input) (*entity.SourceURL, error) {
	if err := validation.Struct(in, inputMessages); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &entity.SourceURL{
		URL:       in.URL,
		IsActive:  active(in.IsActive),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create url: %w", err)
	}
	return u, nil
}

// Update overwrites the URL and active flag and returns the stored document.
// Returns ErrSourceNotFound if the document does not exist.
func (s *Service) Update(ctx context.Context, id string, in Input) (*entity.SourceURL, error) {
	if !entity.IsValidID(id) {
		return nil, entity.ErrInvalidID
	}
	if err := validation.Struct(in, inputMessages); err != nil {
		return nil, err
	}

	updated, err := s.Repo.Update(ctx, &entity.SourceURL{
		ID:        id,
		URL:       in.URL,
		IsActive:  active(in.IsActive),
		UpdatedAt: time.Now().UTC(),
	})
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrSourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update url: %w", err)
	}
	return updated, nil
}

// Delete removes a source URL by its ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrSourceNotFound
	}
	if err != nil {
		return fmt.Errorf("delete url: %w", err)
	}
	return nil
}

func active(b *bool) bool {
	return b == nil || *b
}
