package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
)

const blogPostColumns = `id, title, content, tags, image, subtitle, author, reading_time, created_at, updated_at`

type BlogPostRepo struct{ db *sql.DB }

func NewBlogPostRepo(db *sql.DB) repository.BlogPostRepository {
	return &BlogPostRepo{db: db}
}

// scanBlogPost decodes a row, including the author JSONB column.
func scanBlogPost(row rowScanner) (*entity.BlogPost, error) {
	var p entity.BlogPost
	var tags []string
	var authorJSON []byte
	var updatedAt sql.NullTime
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, pq.Array(&tags), &p.Image, &p.Subtitle,
		&authorJSON, &p.ReadingTime, &p.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	p.Tags = nonNil(tags)
	if len(authorJSON) > 0 && string(authorJSON) != "null" {
		var author entity.PostAuthor
		if err := json.Unmarshal(authorJSON, &author); err != nil {
			return nil, fmt.Errorf("unmarshal author: %w", err)
		}
		p.Author = &author
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.Time
	}
	return &p, nil
}

func marshalAuthor(a *entity.PostAuthor) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (repo *BlogPostRepo) List(ctx context.Context, limit int) ([]*entity.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + `
FROM blog_posts
ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		query += "\nLIMIT $1"
		args = append(args, limit)
	}
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.BlogPost, 0, max(limit, 0))
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (repo *BlogPostRepo) Get(ctx context.Context, id string) (*entity.BlogPost, error) {
	const query = `SELECT ` + blogPostColumns + `
FROM blog_posts
WHERE id = $1`
	p, err := scanBlogPost(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return p, nil
}

func (repo *BlogPostRepo) Create(ctx context.Context, p *entity.BlogPost) error {
	const query = `
INSERT INTO blog_posts (id, title, content, tags, image, subtitle, author, reading_time, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	author, err := marshalAuthor(p.Author)
	if err != nil {
		return fmt.Errorf("Create: marshal author: %w", err)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query,
		id, p.Title, p.Content, pq.Array(nonNil(p.Tags)), p.Image, p.Subtitle, author, p.ReadingTime, p.CreatedAt,
	); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	p.ID = id
	return nil
}

// Update only writes when some column differs, so an identical body reports
// entity.ErrNoChanges instead of touching updated_at.
func (repo *BlogPostRepo) Update(ctx context.Context, p *entity.BlogPost) error {
	const query = `
UPDATE blog_posts
SET title = $2, content = $3, tags = $4, image = $5, subtitle = $6, author = $7,
    reading_time = $8, updated_at = $9
WHERE id = $1
  AND (title, content, tags, image, subtitle, author, reading_time)
      IS DISTINCT FROM ($2, $3, $4::text[], $5, $6, $7::jsonb, $8)`
	author, err := marshalAuthor(p.Author)
	if err != nil {
		return fmt.Errorf("Update: marshal author: %w", err)
	}
	updatedAt := time.Now().UTC()
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}
	res, err := repo.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Content, pq.Array(nonNil(p.Tags)), p.Image, p.Subtitle, author, p.ReadingTime, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := repo.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE id = $1)`, p.ID).Scan(&exists); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if !exists {
		return entity.ErrNotFound
	}
	return entity.ErrNoChanges
}

func (repo *BlogPostRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, "blog_posts", id)
}

/*──────────────── comments ────────────────*/

const commentColumns = `id, blog_post_id, author, content, created_at, updated_at`

type CommentRepo struct{ db *sql.DB }

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func scanComment(row rowScanner) (*entity.Comment, error) {
	var c entity.Comment
	var updatedAt sql.NullTime
	if err := row.Scan(&c.ID, &c.BlogPostID, &c.Author, &c.Content, &c.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.Time
	}
	return &c, nil
}

func (repo *CommentRepo) List(ctx context.Context, blogPostID string) ([]*entity.Comment, error) {
	query := `SELECT ` + commentColumns + `
FROM comments`
	var args []any
	if blogPostID != "" {
		query += "\nWHERE blog_post_id = $1"
		args = append(args, blogPostID)
	}
	query += "\nORDER BY created_at DESC"

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Get(ctx context.Context, id string) (*entity.Comment, error) {
	const query = `SELECT ` + commentColumns + `
FROM comments
WHERE id = $1`
	c, err := scanComment(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	const query = `
INSERT INTO comments (id, blog_post_id, author, content, created_at)
VALUES ($1, $2, $3, $4, $5)`
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query, id, c.BlogPostID, c.Author, c.Content, c.CreatedAt); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	c.ID = id
	return nil
}

func (repo *CommentRepo) UpdateContent(ctx context.Context, id, content string, at time.Time) (*entity.Comment, error) {
	const query = `
UPDATE comments SET content = $2, updated_at = $3
WHERE id = $1
RETURNING ` + commentColumns
	c, err := scanComment(repo.db.QueryRowContext(ctx, query, id, content, at))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateContent: %w", err)
	}
	return c, nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, "comments", id)
}

/*──────────────── helpers ────────────────*/

// deleteByID removes one row from table. table is always a package constant.
func deleteByID(ctx context.Context, db *sql.DB, table, id string) error {
	res, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
