package blogpost

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
)

const (
	// ListLimit is the number of posts returned by List.
	ListLimit = 20

	// slugScanLimit bounds the posts scanned by GetBySlug.
	slugScanLimit = 200

	// MaxImageBytes is the largest accepted image upload.
	MaxImageBytes = 5 << 20

	wordsPerMinute = 200
)

// Image is an uploaded image file.
type Image struct {
	ContentType string
	Data        []byte
}

// Input carries the multipart form fields of a create or update request.
// On update a nil Image or Author, or an empty Subtitle or ReadingTime,
// keeps the stored value.
type Input struct {
	Title       string
	Content     string
	Tags        []string
	Image       *Image
	Subtitle    string
	Author      *entity.PostAuthor
	ReadingTime string
}

type Service struct {
	Repo repository.BlogPostRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := s.Repo.List(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.BlogPost, error) {
	if !entity.IsValidID(id) {
		return nil, entity.ErrInvalidID
	}
	post, err := s.Repo.Get(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// GetBySlug returns the newest post whose title slugifies to slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	want := entity.Slugify(slug)
	if want == "" {
		return nil, ErrPostNotFound
	}
	posts, err := s.Repo.List(ctx, slugScanLimit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for _, p := range posts {
		if entity.Slugify(p.Title) == want {
			return p, nil
		}
	}
	return nil, ErrPostNotFound
}

// Create stores a new post, returning its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return "", ErrTitleContentRequired
	}
	post := &entity.BlogPost{
		Title:       in.Title,
		Content:     in.Content,
		Tags:        cleanTags(in.Tags),
		Subtitle:    in.Subtitle,
		Author:      in.Author,
		ReadingTime: readingTime(in.ReadingTime, in.Content),
		CreatedAt:   time.Now().UTC(),
	}
	if in.Image != nil {
		uri, err := DataURI(in.Image)
		if err != nil {
			return "", err
		}
		post.Image = uri
	}
	if err := s.Repo.Create(ctx, post); err != nil {
		return "", fmt.Errorf("create post: %w", err)
	}
	return post.ID, nil
}

// Update overwrites a post. Fields absent from the form (image, subtitle,
// author, reading time) keep their stored values.
// Returns entity.ErrNoChanges when the stored post already matched.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return ErrTitleContentRequired
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	existing.Title = in.Title
	existing.Content = in.Content
	existing.Tags = cleanTags(in.Tags)
	if in.Subtitle != "" {
		existing.Subtitle = in.Subtitle
	}
	if in.Author != nil {
		existing.Author = in.Author
	}
	if in.ReadingTime != "" || existing.ReadingTime == "" {
		existing.ReadingTime = readingTime(in.ReadingTime, in.Content)
	}
	existing.UpdatedAt = &now
	if in.Image != nil {
		uri, err := DataURI(in.Image)
		if err != nil {
			return err
		}
		existing.Image = uri
	}

	err = s.Repo.Update(ctx, existing)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return ErrPostNotFound
	case errors.Is(err, entity.ErrNoChanges):
		return entity.ErrNoChanges
	case err != nil:
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes a post. A delete that removes nothing is reported as
// ErrDeleteFailed rather than not-found.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return entity.ErrInvalidID
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrDeleteFailed
	}
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// DataURI encodes an uploaded image as "data:<type>;base64,<payload>".
func DataURI(img *Image) (string, error) {
	if len(img.Data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	ct := img.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(img.Data), nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// readingTime keeps an explicit value, otherwise estimates "N min read".
func readingTime(explicit, content string) string {
	if explicit != "" {
		return explicit
	}
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
