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

func TestCategoryRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	ts := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE categories SET name = $2`)).
		WithArgs("65f0c0ffee0000000000abcd", "Markets", true, sqlmock.AnyArg(), ts).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active", "keywords", "created_at", "updated_at"}).
			AddRow("65f0c0ffee0000000000abcd", "Markets", true, []byte("{ipo,sme}"), ts, ts))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE categories SET name = $2`)).
		WillReturnError(sql.ErrNoRows)

	repo := postgres.NewCategoryRepo(db)
	got, err := repo.Update(context.Background(), &entity.Category{
		ID: "65f0c0ffee0000000000abcd", Name: "Markets", IsActive: true, Keywords: []string{"ipo", "sme"}, UpdatedAt: ts,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	want := &entity.Category{ID: "65f0c0ffee0000000000abcd", Name: "Markets", IsActive: true, Keywords: []string{"ipo", "sme"}, CreatedAt: ts, UpdatedAt: ts}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := repo.Update(context.Background(), &entity.Category{ID: "65f0c0ffee0000000000ffff"}); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestKeywordRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	ts := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM keywords WHERE is_active`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "word", "category", "is_active", "created_at", "updated_at"}).
			AddRow("k1", "ipo", "Markets", true, ts, ts).
			AddRow("k2", "gmp", "", true, ts, ts))

	got, err := postgres.NewKeywordRepo(db).ListActive(context.Background())
	if err != nil || len(got) != 2 || got[0].Word != "ipo" || got[1].Category != "" {
		t.Fatalf("ListActive got=%v err=%v", got, err)
	}
}

func TestScrapConfigRepo_CreateAndMarkRun(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO scrap_configs`)).
		WithArgs(sqlmock.AnyArg(), "IPO", sqlmock.AnyArg(), "https://example.com/feed", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE scrap_configs SET last_run_at = $2`)).
		WithArgs(sqlmock.AnyArg(), at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE scrap_configs SET last_run_at = $2`)).
		WithArgs("65f0c0ffee0000000000ffff", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewScrapConfigRepo(db)
	cfg := &entity.ScrapConfig{Category: "IPO", Keywords: []string{"ipo"}, SourceURL: "https://example.com/feed", IsActive: true}
	if err := repo.Create(context.Background(), cfg); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if !entity.IsValidID(cfg.ID) || cfg.CreatedAt.IsZero() {
		t.Fatalf("unexpected config after create: %+v", cfg)
	}
	if err := repo.MarkRun(context.Background(), cfg.ID, at); err != nil {
		t.Fatalf("MarkRun err=%v", err)
	}
	if err := repo.MarkRun(context.Background(), "65f0c0ffee0000000000ffff", at); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("MarkRun err=%v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHeroSlideAndSourceURLRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hero_slides WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM source_urls WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := postgres.NewHeroSlideRepo(db).Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("hero Delete err=%v", err)
	}
	if err := postgres.NewSourceURLRepo(db).Delete(context.Background(), "u1"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("url Delete err=%v, want ErrNotFound", err)
	}
}
