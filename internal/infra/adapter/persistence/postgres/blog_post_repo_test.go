package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-website/internal/domain/entity"
	"news-website/internal/infra/adapter/persistence/postgres"
)

var blogPostCols = []string{"id", "title", "content", "tags", "image", "subtitle", "author", "reading_time", "created_at", "updated_at"}

func TestBlogPostRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM blog_posts`)).
		WithArgs("65f0c0ffee0000000000abcd").
		WillReturnRows(sqlmock.NewRows(blogPostCols).AddRow(
			"65f0c0ffee0000000000abcd", "Post", "body", []byte("{go,web}"), "", "",
			[]byte(`{"name":"Ann","avatar":"a.png"}`), "3 min read", created, nil,
		))

	got, err := postgres.NewBlogPostRepo(db).Get(context.Background(), "65f0c0ffee0000000000abcd")
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	want := &entity.BlogPost{
		ID: "65f0c0ffee0000000000abcd", Title: "Post", Content: "body", Tags: []string{"go", "web"},
		Author: &entity.PostAuthor{Name: "Ann", Avatar: "a.png"}, ReadingTime: "3 min read", CreatedAt: created,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBlogPostRepo_Update(t *testing.T) {
	now := time.Now()
	post := &entity.BlogPost{ID: "65f0c0ffee0000000000abcd", Title: "t", Content: "c", UpdatedAt: &now}

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "modified",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(`UPDATE blog_posts`)).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "identical body",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(`UPDATE blog_posts`)).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			wantErr: entity.ErrNoChanges,
		},
		{
			name: "missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(`UPDATE blog_posts`)).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()
			tt.setup(mock)

			err := postgres.NewBlogPostRepo(db).Update(context.Background(), post)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestBlogPostRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM blog_posts WHERE id = $1`)).
		WithArgs("65f0c0ffee0000000000abcd").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM blog_posts WHERE id = $1`)).
		WithArgs("65f0c0ffee0000000000abcd").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewBlogPostRepo(db)
	if err := repo.Delete(context.Background(), "65f0c0ffee0000000000abcd"); err != nil {
		t.Fatalf("first Delete err=%v", err)
	}
	if err := repo.Delete(context.Background(), "65f0c0ffee0000000000abcd"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("second Delete err=%v, want ErrNotFound", err)
	}
}

func TestCommentRepo_ListAndUpdate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	cols := []string{"id", "blog_post_id", "author", "content", "created_at", "updated_at"}
	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	edited := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE blog_post_id = $1\nORDER BY created_at DESC")).
		WithArgs("65f0c0ffee0000000000aaaa").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("c1", "65f0c0ffee0000000000aaaa", "Ann", "hi", created, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE comments SET content = $2, updated_at = $3`)).
		WithArgs("c1", "edited", edited).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("c1", "65f0c0ffee0000000000aaaa", "Ann", "edited", created, edited))

	repo := postgres.NewCommentRepo(db)
	list, err := repo.List(context.Background(), "65f0c0ffee0000000000aaaa")
	if err != nil || len(list) != 1 || list[0].UpdatedAt != nil {
		t.Fatalf("List got=%v err=%v", list, err)
	}
	got, err := repo.UpdateContent(context.Background(), "c1", "edited", edited)
	if err != nil || got.Content != "edited" || got.UpdatedAt == nil || !got.UpdatedAt.Equal(edited) {
		t.Fatalf("UpdateContent got=%+v err=%v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
