package repository

import (
	"context"
	"time"

	"news-website/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	// Update overwrites the mutable fields and returns the stored document.
	Update(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type KeywordRepository interface {
	List(ctx context.Context) ([]*entity.Keyword, error)
	ListActive(ctx context.Context) ([]*entity.Keyword, error)
	Create(ctx context.Context, keyword *entity.Keyword) error
	Update(ctx context.Context, keyword *entity.Keyword) error
	Delete(ctx context.Context, id string) error
}

type SourceURLRepository interface {
	List(ctx context.Context) ([]*entity.SourceURL, error)
	Create(ctx context.Context, u *entity.SourceURL) error
	Update(ctx context.Context, u *entity.SourceURL) (*entity.SourceURL, error)
	Delete(ctx context.Context, id string) error
}

type ScrapConfigRepository interface {
	List(ctx context.Context) ([]*entity.ScrapConfig, error)
	ListActive(ctx context.Context) ([]*entity.ScrapConfig, error)
	Create(ctx context.Context, cfg *entity.ScrapConfig) error
	Update(ctx context.Context, cfg *entity.ScrapConfig) (*entity.ScrapConfig, error)
	Delete(ctx context.Context, id string) error
	MarkRun(ctx context.Context, id string, at time.Time) error
}

type HeroSlideRepository interface {
	List(ctx context.Context) ([]*entity.HeroSlide, error)
	Create(ctx context.Context, slide *entity.HeroSlide) error
	Update(ctx context.Context, slide *entity.HeroSlide) (*entity.HeroSlide, error)
	Delete(ctx context.Context, id string) error
}
