package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
)

const articleColumns = `id, title, content, category, published_date, source, image,
       author, slug, summary, likes, bookmarks, created_at, updated_at`

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var a entity.Article
	if err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Category, &a.PublishedDate, &a.Source, &a.Image,
		&a.Author, &a.Slug, &a.Summary, &a.Likes, &a.Bookmarks, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (repo *ArticleRepo) List(ctx context.Context, f entity.ArticleFilter) ([]*entity.Article, error) {
	where, args := repo.queryBuilder.BuildWhereClause(f)
	query := "SELECT " + articleColumns + "\nFROM articles\n" + where + "\nORDER BY published_date DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf("\nLIMIT $%d", len(args))
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, max(f.Limit, 0))
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `SELECT ` + articleColumns + `
FROM articles
WHERE id = $1`
	return repo.one(ctx, "Get", query, id)
}

func (repo *ArticleRepo) FindByField(ctx context.Context, value string) (*entity.Article, error) {
	const query = `SELECT ` + articleColumns + `
FROM articles
WHERE slug = $1 OR title = $1
ORDER BY published_date DESC
LIMIT 1`
	return repo.one(ctx, "FindByField", query, value)
}

// FindByTitlePattern uses the case-insensitive POSIX match operator, which
// accepts the escapes produced by regexp.QuoteMeta and the \W class.
func (repo *ArticleRepo) FindByTitlePattern(ctx context.Context, pattern string) (*entity.Article, error) {
	const query = `SELECT ` + articleColumns + `
FROM articles
WHERE title ~* $1
ORDER BY published_date DESC
LIMIT 1`
	return repo.one(ctx, "FindByTitlePattern", query, pattern)
}

func (repo *ArticleRepo) Latest(ctx context.Context) (*entity.Article, error) {
	const query = `SELECT ` + articleColumns + `
FROM articles
ORDER BY published_date DESC
LIMIT 1`
	return repo.one(ctx, "Latest", query)
}

func (repo *ArticleRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Article, error) {
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

func (repo *ArticleRepo) ExistsByURL(ctx context.Context, source string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE source = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, source).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByURL: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles (id, title, content, category, published_date, source, image,
                      author, slug, summary, likes, bookmarks, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	id := entity.NewID()
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	if _, err := repo.db.ExecContext(ctx, query,
		id, a.Title, a.Content, a.Category, a.PublishedDate, a.Source, a.Image,
		a.Author, a.Slug, a.Summary, a.Likes, a.Bookmarks, a.CreatedAt, a.UpdatedAt,
	); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	a.ID = id
	return nil
}

func (repo *ArticleRepo) AdjustCounter(ctx context.Context, id, field string, delta int64) (int64, error) {
	var query string
	switch field {
	case entity.CounterLikes:
		query = `UPDATE articles SET likes = GREATEST(likes + $2, 0) WHERE id = $1 RETURNING likes`
	case entity.CounterBookmarks:
		query = `UPDATE articles SET bookmarks = GREATEST(bookmarks + $2, 0) WHERE id = $1 RETURNING bookmarks`
	default:
		return 0, fmt.Errorf("AdjustCounter: unknown counter %q: %w", field, entity.ErrInvalidInput)
	}

	var n int64
	err := repo.db.QueryRowContext(ctx, query, id, delta).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entity.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("AdjustCounter: %w", err)
	}
	return n, nil
}
