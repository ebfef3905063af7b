package repository

import (
	"context"
	"time"

	"news-website/internal/domain/entity"
)

type BlogPostRepository interface {
	// List returns up to limit posts, newest first.
	List(ctx context.Context, limit int) ([]*entity.BlogPost, error)
	Get(ctx context.Context, id string) (*entity.BlogPost, error)
	Create(ctx context.Context, post *entity.BlogPost) error
	// Update returns entity.ErrNoChanges when the stored post already matches.
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	// List returns comments newest first; an empty blogPostID lists every comment.
	List(ctx context.Context, blogPostID string) ([]*entity.Comment, error)
	Get(ctx context.Context, id string) (*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	UpdateContent(ctx context.Context, id, content string, at time.Time) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
}
