package repository

import (
	"context"

	"news-website/internal/domain/entity"
)

// ArticleRepository persists articles. Every lookup reports a missing
// document as entity.ErrNotFound.
type ArticleRepository interface {
	// List returns articles sorted by published date, newest first.
	List(ctx context.Context, filter entity.ArticleFilter) ([]*entity.Article, error)
	Get(ctx context.Context, id string) (*entity.Article, error)
	// FindByField matches value exactly against the slug or the title.
	FindByField(ctx context.Context, value string) (*entity.Article, error)
	// FindByTitlePattern matches a case-insensitive regular expression against the title.
	FindByTitlePattern(ctx context.Context, pattern string) (*entity.Article, error)
	// Latest returns the most recently published article.
	Latest(ctx context.Context) (*entity.Article, error)
	ExistsByURL(ctx context.Context, source string) (bool, error)
	Create(ctx context.Context, article *entity.Article) error
	// AdjustCounter adds delta to a counter field (likes or bookmarks) without
	// letting it drop below zero and returns the new value.
	AdjustCounter(ctx context.Context, id, field string, delta int64) (int64, error)
}
