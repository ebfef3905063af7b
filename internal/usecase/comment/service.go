// Package comment provides use cases for reader comments on blog posts.
package comment

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

// ErrCommentNotFound indicates that the requested comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CreateInput is the public body for posting a comment.
type CreateInput struct {
	BlogPostID string `json:"blogPostId" validate:"required,objectid"`
	Author     string `json:"author" validate:"notblank,max=100"`
	Content    string `json:"content" validate:"notblank,max=2000"`
}

// UpdateInput is the moderation body; only the content can change.
type UpdateInput struct {
	Content string `json:"content" validate:"notblank,max=2000"`
}

var messages = validation.Messages{
	"blogPostId.required": "Blog post ID is required",
	"blogPostId.objectid": "Invalid blog post ID",
	"author.notblank":     "Author is required",
	"author.max":          "Author cannot exceed 100 characters",
	"content.notblank":    "Content is required",
	"content.max":         "Content cannot exceed 2000 characters",
}

type Service struct {
	Repo repository.CommentRepository
}

// List returns comments for one post, or every comment when blogPostID is empty.
func (s *Service) List(ctx context.Context, blogPostID string) ([]*entity.Comment, error) {
	if blogPostID != "" && !entity.IsValidID(blogPostID) {
		return nil, entity.ErrInvalidID
	}
	cs, err := s.Repo.List(ctx, blogPostID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return cs, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	if err := validation.Struct(in, messages); err != nil {
		return nil, err
	}
	c := &entity.Comment{
		BlogPostID: in.BlogPostID,
		Author:     strings.TrimSpace(in.Author),
		Content:    strings.TrimSpace(in.Content),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Comment, error) {
	if !entity.IsValidID(id) {
		return nil, entity.ErrInvalidID
	}
	if err := validation.Struct(in, messages); err != nil {
		return nil, err
	}
	c, err := s.Repo.UpdateContent(ctx, id, strings.TrimSpace(in.Content), time.Now().UTC())
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
