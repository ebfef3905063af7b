package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-website/internal/domain/entity"
	"news-website/internal/infra/adapter/persistence/postgres"
)

/* ──────────────────────────────── ヘルパ ──────────────────────────────── */

var articleCols = []string{
	"id", "title", "content", "category", "published_date", "source", "image",
	"author", "slug", "summary", "likes", "bookmarks", "created_at", "updated_at",
}

func articleRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows(articleCols).AddRow(
		a.ID, a.Title, a.Content, a.Category, a.PublishedDate, a.Source, a.Image,
		a.Author, a.Slug, a.Summary, a.Likes, a.Bookmarks, a.CreatedAt, a.UpdatedAt,
	)
}

func sampleArticle() *entity.Article {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &entity.Article{
		ID: "65f0c0ffee0000000000abcd", Title: "IPO week", Content: "body", Category: "Markets",
		PublishedDate: ts, Source: "https://example.com/a", Image: "https://example.com/a.png",
		Slug: "ipo-week", Likes: 2, CreatedAt: ts, UpdatedAt: ts,
	}
}

/* ──────────────────────────────── 1. List ──────────────────────────────── */

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleArticle()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE category = $1 AND id <> $2\nORDER BY published_date DESC\nLIMIT $3")).
		WithArgs("Markets", "65f0c0ffee0000000000ffff", 5).
		WillReturnRows(articleRow(want))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.List(context.Background(), entity.ArticleFilter{Category: "Markets", ExcludeID: "65f0c0ffee0000000000ffff", Limit: 5})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff([]*entity.Article{want}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 2. Get / lookups ──────────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleArticle()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(want.ID).
		WillReturnRows(articleRow(want))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs("65f0c0ffee0000000000ffff").
		WillReturnError(sql.ErrNoRows)

	repo := postgres.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := repo.Get(context.Background(), "65f0c0ffee0000000000ffff"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Lookups(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleArticle()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE slug = $1 OR title = $1`)).
		WithArgs("ipo-week").
		WillReturnRows(articleRow(want))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE title ~* $1`)).
		WithArgs(`ipo\W+week`).
		WillReturnRows(sqlmock.NewRows(articleCols))
	mock.ExpectQuery(regexp.QuoteMeta("FROM articles\nORDER BY published_date DESC\nLIMIT 1")).
		WillReturnRows(articleRow(want))

	repo := postgres.NewArticleRepo(db)
	if got, err := repo.FindByField(context.Background(), "ipo-week"); err != nil || got.ID != want.ID {
		t.Fatalf("FindByField got=%+v err=%v", got, err)
	}
	if _, err := repo.FindByTitlePattern(context.Background(), `ipo\W+week`); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("FindByTitlePattern err=%v, want ErrNotFound", err)
	}
	if got, err := repo.Latest(context.Background()); err != nil || got.ID != want.ID {
		t.Fatalf("Latest got=%+v err=%v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 3. Create / ExistsByURL ──────────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	a := sampleArticle()
	a.ID = ""
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO articles`)).
		WithArgs(sqlmock.AnyArg(), a.Title, a.Content, a.Category, a.PublishedDate, a.Source, a.Image,
			a.Author, a.Slug, a.Summary, a.Likes, a.Bookmarks, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := postgres.NewArticleRepo(db).Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if !entity.IsValidID(a.ID) {
		t.Errorf("ID = %q, want ObjectId hex", a.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ExistsByURL(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("https://example.com/a").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := postgres.NewArticleRepo(db).ExistsByURL(context.Background(), "https://example.com/a")
	if err != nil || !ok {
		t.Fatalf("ExistsByURL ok=%v err=%v", ok, err)
	}
}

/* ──────────────────────────────── 4. AdjustCounter ──────────────────────────────── */

func TestArticleRepo_AdjustCounter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SET likes = GREATEST(likes + $2, 0)`)).
		WithArgs("65f0c0ffee0000000000abcd", int64(-1)).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta(`SET bookmarks = GREATEST(bookmarks + $2, 0)`)).
		WithArgs("65f0c0ffee0000000000ffff", int64(1)).
		WillReturnError(sql.ErrNoRows)

	repo := postgres.NewArticleRepo(db)
	n, err := repo.AdjustCounter(context.Background(), "65f0c0ffee0000000000abcd", entity.CounterLikes, -1)
	if err != nil || n != 0 {
		t.Fatalf("AdjustCounter n=%d err=%v", n, err)
	}
	if _, err := repo.AdjustCounter(context.Background(), "65f0c0ffee0000000000ffff", entity.CounterBookmarks, 1); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if _, err := repo.AdjustCounter(context.Background(), "65f0c0ffee0000000000ffff", "views", 1); !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
