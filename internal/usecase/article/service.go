package article

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
	"news-website/internal/validation"
)

const (
	// DefaultListLimit is the number of articles returned when no limit is given.
	DefaultListLimit = 10
	// MaxListLimit caps client supplied limits.
	MaxListLimit = 50
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title         string `json:"title" validate:"required,max=200"`
	Content       string `json:"content" validate:"required,max=50000"`
	Category      string `json:"category" validate:"required"`
	PublishedDate string `json:"published_date" validate:"required,pubdate"`
	Source        string `json:"source" validate:"httpurl"`
	Image         string `json:"image" validate:"httpurl"`
	Author        string `json:"author"`
}

var createMessages = validation.Messages{
	"title.required":          "Title is required",
	"title.max":               "Title cannot exceed 200 characters",
	"content.required":        "Content is required",
	"content.max":             "Content is too long",
	"category.required":       "Category is required",
	"published_date.required": "Published date is required",
	"published_date.pubdate":  "Invalid date",
	"source.httpurl":          "Invalid source URL",
	"image.httpurl":           "Invalid image URL",
}

// Strategy names the lookup step that located an article in Resolve.
type Strategy string

const (
	StrategyID     Strategy = "id"
	StrategyField  Strategy = "field"
	StrategyRegex  Strategy = "regex"
	StrategyLatest Strategy = "latest"
)

// ResolveResult is the article found by Resolve and the step that found it.
type ResolveResult struct {
	Article  *entity.Article
	Strategy Strategy
}

// Service provides article use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves articles newest first, optionally restricted to a category
// and excluding one article (the "related articles" widget).
func (s *Service) List(ctx context.Context, filter entity.ArticleFilter) ([]*entity.Article, error) {
	if filter.Limit < 0 {
		return nil, ErrInvalidLimit
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.ExcludeID != "" && !entity.IsValidID(filter.ExcludeID) {
		return nil, entity.ErrInvalidID
	}

	articles, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves an article by its ObjectId.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if !entity.IsValidID(id) {
		return nil, entity.ErrInvalidID
	}
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// Resolve locates an article from a loosely specified identifier. It tries, in
// order: the identifier as an ObjectId, an exact slug or title match, a
// case-insensitive title pattern built from the identifier's words, and
// finally the most recently published article. A step that finds nothing
// falls through to the next; any other repository error aborts the chain.
func (s *Service) Resolve(ctx context.Context, identifier string) (*ResolveResult, error) {
	ident := strings.TrimSpace(identifier)

	if entity.IsValidID(ident) {
		a, err := s.Repo.Get(ctx, ident)
		if err == nil {
			return &ResolveResult{Article: a, Strategy: StrategyID}, nil
		}
		if !errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("resolve article by id: %w", err)
		}
	}

	if ident != "" {
		a, err := s.Repo.FindByField(ctx, ident)
		if err == nil {
			return &ResolveResult{Article: a, Strategy: StrategyField}, nil
		}
		if !errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("resolve article by field: %w", err)
		}
	}

	if pattern := TitlePattern(ident); pattern != "" {
		a, err := s.Repo.FindByTitlePattern(ctx, pattern)
		if err == nil {
			return &ResolveResult{Article: a, Strategy: StrategyRegex}, nil
		}
		if !errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("resolve article by pattern: %w", err)
		}
	}

	a, err := s.Repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve latest article: %w", err)
	}
	return &ResolveResult{Article: a, Strategy: StrategyLatest}, nil
}

var wordSplit = regexp.MustCompile(`[\s\-_+]+`)

// TitlePattern turns "go-1-25-release" into a regular expression matching
// titles that contain those words in order, separated by anything that is
// not a letter or digit. It returns "" when the identifier has no words.
func TitlePattern(identifier string) string {
	var words []string
	for _, w := range wordSplit.Split(strings.TrimSpace(identifier), -1) {
		if w != "" {
			words = append(words, regexp.QuoteMeta(w))
		}
	}
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, `\W+`)
}

// Create validates the input and stores a new article, returning its id.
// Returns entity.ValidationErrors if any field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if err := validation.Struct(in, createMessages); err != nil {
		return "", err
	}
	published, _ := entity.ParseDate(in.PublishedDate)

	now := time.Now().UTC()
	a := &entity.Article{
		Title:         in.Title,
		Content:       in.Content,
		Category:      in.Category,
		PublishedDate: published,
		Source:        in.Source,
		Image:         in.Image,
		Author:        in.Author,
		Slug:          entity.Slugify(in.Title),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return "", fmt.Errorf("create article: %w", err)
	}
	return a.ID, nil
}

// Like applies "like" or "unlike" and returns the new like count.
func (s *Service) Like(ctx context.Context, id, action string) (int64, error) {
	var delta int64
	switch action {
	case "like":
		delta = 1
	case "unlike":
		delta = -1
	default:
		return 0, ErrInvalidAction
	}
	return s.adjust(ctx, id, entity.CounterLikes, delta)
}

// Bookmark applies "add" or "remove" and returns the new bookmark count.
func (s *Service) Bookmark(ctx context.Context, id, action string) (int64, error) {
	var delta int64
	switch action {
	case "add":
		delta = 1
	case "remove":
		delta = -1
	default:
		return 0, ErrInvalidAction
	}
	return s.adjust(ctx, id, entity.CounterBookmarks, delta)
}

func (s *Service) adjust(ctx context.Context, id, field string, delta int64) (int64, error) {
	if !entity.IsValidID(id) {
		return 0, entity.ErrInvalidID
	}
	n, err := s.Repo.AdjustCounter(ctx, id, field, delta)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", field, err)
	}
	return n, nil
}
