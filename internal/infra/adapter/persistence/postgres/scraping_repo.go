package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
)

// one runs a single-row query and reports sql.ErrNoRows as entity.ErrNotFound.
func one[T any](row *sql.Row, scan func(rowScanner) (*T, error), op string) (*T, error) {
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func many[T any](ctx context.Context, db *sql.DB, scan func(rowScanner) (*T, error), query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}

/*──────────────── categories ────────────────*/

const categoryColumns = `id, name, is_active, keywords, created_at, updated_at`

type CategoryRepo struct{ db *sql.DB }

func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func scanCategory(row rowScanner) (*entity.Category, error) {
	var c entity.Category
	var kws []string
	if err := row.Scan(&c.ID, &c.Name, &c.IsActive, pq.Array(&kws), &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Keywords = nonNil(kws)
	return &c, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return many(ctx, repo.db, scanCategory, `SELECT `+categoryColumns+` FROM categories ORDER BY created_at DESC`)
}

func (repo *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	return many(ctx, repo.db, scanCategory, `SELECT `+categoryColumns+` FROM categories WHERE is_active ORDER BY created_at DESC`)
}

func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	const query = `
INSERT INTO categories (id, name, is_active, keywords, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	stamp(&c.CreatedAt, &c.UpdatedAt)
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query, id, c.Name, c.IsActive, pq.Array(nonNil(c.Keywords)), c.CreatedAt, c.UpdatedAt); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	c.ID = id
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	const query = `
UPDATE categories SET name = $2, is_active = $3, keywords = $4, updated_at = $5
WHERE id = $1
RETURNING ` + categoryColumns
	row := repo.db.QueryRowContext(ctx, query, c.ID, c.Name, c.IsActive, pq.Array(nonNil(c.Keywords)), c.UpdatedAt)
	return one(row, scanCategory, "Update")
}

func (repo *CategoryRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, "categories", id)
}

/*──────────────── keywords ────────────────*/

const keywordColumns = `id, word, category, is_active, created_at, updated_at`

type KeywordRepo struct{ db *sql.DB }

func NewKeywordRepo(db *sql.DB) repository.KeywordRepository {
	return &KeywordRepo{db: db}
}

func scanKeyword(row rowScanner) (*entity.Keyword, error) {
	var k entity.Keyword
	if err := row.Scan(&k.ID, &k.Word, &k.Category, &k.IsActive, &k.CreatedAt, &k.UpdatedAt); err != nil {
		return nil, err
	}
	return &k, nil
}

func (repo *KeywordRepo) List(ctx context.Context) ([]*entity.Keyword, error) {
	return many(ctx, repo.db, scanKeyword, `SELECT `+keywordColumns+` FROM keywords`)
}

func (repo *KeywordRepo) ListActive(ctx context.Context) ([]*entity.Keyword, error) {
	return many(ctx, repo.db, scanKeyword, `SELECT `+keywordColumns+` FROM keywords WHERE is_active`)
}

func (repo *KeywordRepo) Create(ctx context.Context, k *entity.Keyword) error {
	const query = `
INSERT INTO keywords (id, word, category, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	stamp(&k.CreatedAt, &k.UpdatedAt)
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query, id, k.Word, k.Category, k.IsActive, k.CreatedAt, k.UpdatedAt); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	k.ID = id
	return nil
}

func (repo *KeywordRepo) Update(ctx context.Context, k *entity.Keyword) error {
	const query = `
UPDATE keywords SET word = $2, category = $3, is_active = $4, updated_at = $5
WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, k.ID, k.Word, k.Category, k.IsActive, k.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *KeywordRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, "keywords", id)
}

/*──────────────── urls ────────────────*/

const sourceURLColumns = `id, url, is_active, created_at, updated_at`

type SourceURLRepo struct{ db *sql.DB }

func NewSourceURLRepo(db *sql.DB) repository.SourceURLRepository {
	return &SourceURLRepo{db: db}
}

func scanSourceURL(row rowScanner) (*entity.SourceURL, error) {
	var u entity.SourceURL
	if err := row.Scan(&u.ID, &u.URL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *SourceURLRepo) List(ctx context.Context) ([]*entity.SourceURL, error) {
	return many(ctx, repo.db, scanSourceURL, `SELECT `+sourceURLColumns+` FROM source_urls ORDER BY created_at DESC`)
}

func (repo *SourceURLRepo) Create(ctx context.Context, u *entity.SourceURL) error {
	const query = `
INSERT INTO source_urls (id, url, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`
	stamp(&u.CreatedAt, &u.UpdatedAt)
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query, id, u.URL, u.IsActive, u.CreatedAt, u.UpdatedAt); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	u.ID = id
	return nil
}

func (repo *SourceURLRepo) Update(ctx context.Context, u *entity.SourceURL) (*entity.SourceURL, error) {
	const query = `
UPDATE source_urls SET url = $2, is_active = $3, updated_at = $4
WHERE id = $1
RETURNING ` + sourceURLColumns
	return one(repo.db.QueryRowContext(ctx, query, u.ID, u.URL, u.IsActive, u.UpdatedAt), scanSourceURL, "Update")
}

func (repo *SourceURLRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, "source_urls", id)
}

/*──────────────── scrap configs ────────────────*/

const scrapConfigColumns = `id, category, keywords, source_url, is_active, last_run_at, created_at, updated_at`

type ScrapConfigRepo struct{ db *sql.DB }

func NewScrapConfigRepo(db *sql.DB) repository.ScrapConfigRepository {
	return &ScrapConfigRepo{db: db}
}

func scanScrapConfig(row rowScanner) (*entity.ScrapConfig, error) {
	var c entity.ScrapConfig
	var kws []string
	var lastRun sql.NullTime
	if err := row.Scan(&c.ID, &c.Category, pq.Array(&kws), &c.SourceURL, &c.IsActive, &lastRun, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Keywords = nonNil(kws)
	if lastRun.Valid {
		c.LastRunAt = &lastRun.Time
	}
	return &c, nil
}

func (repo *ScrapConfigRepo) List(ctx context.Context) ([]*entity.ScrapConfig, error) {
	return many(ctx, repo.db, scanScrapConfig, `SELECT `+scrapConfigColumns+` FROM scrap_configs ORDER BY created_at DESC`)
}

func (repo *ScrapConfigRepo) ListActive(ctx context.Context) ([]*entity.ScrapConfig, error) {
	return many(ctx, repo.db, scanScrapConfig, `SELECT `+scrapConfigColumns+` FROM scrap_configs WHERE is_active ORDER BY created_at DESC`)
}

func (repo *ScrapConfigRepo) Create(ctx context.Context, c *entity.ScrapConfig) error {
	const query = `
INSERT INTO scrap_configs (id, category, keywords, source_url, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	stamp(&c.CreatedAt, &c.UpdatedAt)
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query,
		id, c.Category, pq.Array(nonNil(c.Keywords)), c.SourceURL, c.IsActive, c.CreatedAt, c.UpdatedAt,
	); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	c.ID = id
	return nil
}

func (repo *ScrapConfigRepo) Update(ctx context.Context, c *entity.ScrapConfig) (*entity.ScrapConfig, error) {
	const query = `
UPDATE scrap_configs SET category = $2, keywords = $3, source_url = $4, is_active = $5, updated_at = $6
WHERE id = $1
RETURNING ` + scrapConfigColumns
	row := repo.db.QueryRowContext(ctx, query, c.ID, c.Category, pq.Array(nonNil(c.Keywords)), c.SourceURL, c.IsActive, c.UpdatedAt)
	return one(row, scanScrapConfig, "Update")
}

func (repo *ScrapConfigRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, "scrap_configs", id)
}

func (repo *ScrapConfigRepo) MarkRun(ctx context.Context, id string, at time.Time) error {
	res, err := repo.db.ExecContext(ctx, `UPDATE scrap_configs SET last_run_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("MarkRun: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("MarkRun: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

/*──────────────── hero slides ────────────────*/

const heroSlideColumns = `id, title, tagline, description, image_url, cta_label, cta_link, created_at, updated_at`

type HeroSlideRepo struct{ db *sql.DB }

func NewHeroSlideRepo(db *sql.DB) repository.HeroSlideRepository {
	return &HeroSlideRepo{db: db}
}

func scanHeroSlide(row rowScanner) (*entity.HeroSlide, error) {
	var s entity.HeroSlide
	if err := row.Scan(&s.ID, &s.Title, &s.Tagline, &s.Description, &s.ImageURL, &s.CTALabel, &s.CTALink, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (repo *HeroSlideRepo) List(ctx context.Context) ([]*entity.HeroSlide, error) {
	return many(ctx, repo.db, scanHeroSlide, `SELECT `+heroSlideColumns+` FROM hero_slides ORDER BY created_at DESC`)
}

func (repo *HeroSlideRepo) Create(ctx context.Context, s *entity.HeroSlide) error {
	const query = `
INSERT INTO hero_slides (id, title, tagline, description, image_url, cta_label, cta_link, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	stamp(&s.CreatedAt, &s.UpdatedAt)
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query,
		id, s.Title, s.Tagline, s.Description, s.ImageURL, s.CTALabel, s.CTALink, s.CreatedAt, s.UpdatedAt,
	); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	s.ID = id
	return nil
}

func (repo *HeroSlideRepo) Update(ctx context.Context, s *entity.HeroSlide) (*entity.HeroSlide, error) {
	const query = `
UPDATE hero_slides
SET title = $2, tagline = $3, description = $4, image_url = $5, cta_label = $6, cta_link = $7, updated_at = $8
WHERE id = $1
RETURNING ` + heroSlideColumns
	row := repo.db.QueryRowContext(ctx, query, s.ID, s.Title, s.Tagline, s.Description, s.ImageURL, s.CTALabel, s.CTALink, s.UpdatedAt)
	return one(row, scanHeroSlide, "Update")
}

func (repo *HeroSlideRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, "hero_slides", id)
}
