// Package heroslide provides use cases for the landing page carousel.
package heroslide

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
	"news-website/internal/validation"
)

// ErrSlideNotFound indicates that the requested slide does not exist.
var ErrSlideNotFound = errors.New("slide not found")

// Input is the body accepted for both create and update.
type Input struct {
	Title       string `json:"title" validate:"required,max=100"`
	Tagline     string `json:"tagline" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=500"`
	ImageURL    string `json:"imageUrl" validate:"httpurl,max=500"`
	CTALabel    string `json:"ctaLabel" validate:"required,max=50"`
	CTALink     string `json:"ctaLink" validate:"httpurl,max=500"`
}

var inputMessages = validation.Messages{
	"title.required":       "Title is required",
	"title.max":            "Title cannot exceed 100 characters",
	"tagline.required":     "Tagline is required",
	"tagline.max":          "Tagline cannot exceed 200 characters",
	"description.required": "Description is required",
	"description.max":      "Description cannot exceed 500 characters",
	"imageUrl.httpurl":     "Invalid image URL",
	"imageUrl.max":         "Image URL is too long",
	"ctaLabel.required":    "CTA Label is required",
	"ctaLabel.max":         "CTA Label cannot exceed 50 characters",
	"ctaLink.httpurl":      "Invalid CTA URL",
	"ctaLink.max":          "CTA Link is too long",
}

type Service struct {
	Repo repository.HeroSlideRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.HeroSlide, error) {
	slides, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hero slides: %w", err)
	}
	return slides, nil
}

// Create validates the input and stores a new slide, returning its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if err := validation.Struct(in, inputMessages); err != nil {
		return "", err
	}
	now := time.Now().UTC()
	slide := fromInput(in)
	slide.CreatedAt, slide.UpdatedAt = now, now
	if err := s.Repo.Create(ctx, slide); err != nil {
		return "", fmt.Errorf("create hero slide: %w", err)
	}
	return slide.ID, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*entity.HeroSlide, error) {
	if !entity.IsValidID(id) {
		return nil, entity.ErrInvalidID
	}
	if err := validation.Struct(in, inputMessages); err != nil {
		return nil, err
	}
	slide := fromInput(in)
	slide.ID = id
	slide.UpdatedAt = time.Now().UTC()

	updated, err := s.Repo.Update(ctx, slide)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrSlideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update hero slide: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrSlideNotFound
	}
	if err != nil {
		return fmt.Errorf("delete hero slide: %w", err)
	}
	return nil
}

func fromInput(in Input) *entity.HeroSlide {
	return &entity.HeroSlide{
		Title:       in.Title,
		Tagline:     in.Tagline,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CTALabel:    in.CTALabel,
		CTALink:     in.CTALink,
	}
}
