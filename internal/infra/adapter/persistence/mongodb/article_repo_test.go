package mongodb_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"news-website/internal/domain/entity"
	"news-website/internal/infra/adapter/persistence/mongodb"
)

/* ──────────────────────────────── ヘルパ ──────────────────────────────── */

const ns = "newsarchives.articles"

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func articleDoc(oid primitive.ObjectID, title string, published time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "title", Value: title},
		{Key: "content", Value: "body"},
		{Key: "category", Value: "Markets"},
		{Key: "published_date", Value: published},
		{Key: "source", Value: "https://example.com/a"},
		{Key: "image", Value: "https://example.com/a.png"},
		{Key: "likes", Value: int64(3)},
	}
}

/* ──────────────────────────────── 1. List ──────────────────────────────── */

func TestArticleRepo_List(t *testing.T) {
	mt := newMock(t)

	mt.Run("decodes documents", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		pub := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, articleDoc(oid, "IPO week", pub)))

		repo := mongodb.NewArticleRepo(mt.DB)
		got, err := repo.List(context.Background(), entity.ArticleFilter{Category: "Markets", Limit: 10})
		if err != nil {
			t.Fatalf("List err=%v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len=%d, want 1", len(got))
		}
		if got[0].ID != oid.Hex() || got[0].Title != "IPO week" || !got[0].PublishedDate.Equal(pub) || got[0].Likes != 3 {
			t.Errorf("unexpected article: %+v", got[0])
		}
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := mongodb.NewArticleRepo(mt.DB).List(context.Background(), entity.ArticleFilter{})
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("List got=%v err=%v, want empty non-nil slice", got, err)
		}
	})

	mt.Run("invalid exclude id", func(mt *mtest.T) {
		_, err := mongodb.NewArticleRepo(mt.DB).List(context.Background(), entity.ArticleFilter{ExcludeID: "nope"})
		if !errors.Is(err, entity.ErrInvalidID) {
			t.Fatalf("err=%v, want ErrInvalidID", err)
		}
	})
}

/* ──────────────────────────────── 2. Get / lookups ──────────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	mt := newMock(t)

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, articleDoc(oid, "Hello", time.Now())))

		got, err := mongodb.NewArticleRepo(mt.DB).Get(context.Background(), oid.Hex())
		if err != nil || got.ID != oid.Hex() {
			t.Fatalf("Get got=%+v err=%v", got, err)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := mongodb.NewArticleRepo(mt.DB).Get(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		_, err := mongodb.NewArticleRepo(mt.DB).Get(context.Background(), "123")
		if !errors.Is(err, entity.ErrInvalidID) {
			t.Fatalf("err=%v, want ErrInvalidID", err)
		}
	})
}

func TestArticleRepo_Lookups(t *testing.T) {
	mt := newMock(t)

	mt.Run("field match", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, articleDoc(oid, "ipo-week", time.Now())))

		got, err := mongodb.NewArticleRepo(mt.DB).FindByField(context.Background(), "ipo-week")
		if err != nil || got.ID != oid.Hex() {
			t.Fatalf("FindByField got=%+v err=%v", got, err)
		}
	})

	mt.Run("pattern miss", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := mongodb.NewArticleRepo(mt.DB).FindByTitlePattern(context.Background(), `ipo\W+week`)
		if !errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})

	mt.Run("latest", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, articleDoc(oid, "Newest", time.Now())))

		got, err := mongodb.NewArticleRepo(mt.DB).Latest(context.Background())
		if err != nil || got.Title != "Newest" {
			t.Fatalf("Latest got=%+v err=%v", got, err)
		}
	})

	mt.Run("server error is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		_, err := mongodb.NewArticleRepo(mt.DB).Latest(context.Background())
		if err == nil || errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("err=%v, want a server error", err)
		}
	})
}

/* ──────────────────────────────── 3. Create / ExistsByURL ──────────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	mt := newMock(t)

	mt.Run("assigns id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		a := &entity.Article{Title: "New", Content: "c", Category: "Tech", PublishedDate: time.Now()}
		if err := mongodb.NewArticleRepo(mt.DB).Create(context.Background(), a); err != nil {
			t.Fatalf("Create err=%v", err)
		}
		if !entity.IsValidID(a.ID) {
			t.Errorf("ID = %q, want ObjectId hex", a.ID)
		}
		if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
			t.Errorf("timestamps not set: %+v", a)
		}
	})
}

func TestArticleRepo_ExistsByURL(t *testing.T) {
	mt := newMock(t)

	mt.Run("exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		ok, err := mongodb.NewArticleRepo(mt.DB).ExistsByURL(context.Background(), "https://example.com/a")
		if err != nil || !ok {
			t.Fatalf("ExistsByURL ok=%v err=%v", ok, err)
		}
	})

	mt.Run("absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		ok, err := mongodb.NewArticleRepo(mt.DB).ExistsByURL(context.Background(), "https://example.com/b")
		if err != nil || ok {
			t.Fatalf("ExistsByURL ok=%v err=%v", ok, err)
		}
	})
}

/* ──────────────────────────────── 4. AdjustCounter ──────────────────────────────── */

func TestArticleRepo_AdjustCounter(t *testing.T) {
	mt := newMock(t)

	mt.Run("returns new value", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "bookmarks", Value: int64(8)},
		}}))

		n, err := mongodb.NewArticleRepo(mt.DB).AdjustCounter(context.Background(), oid.Hex(), entity.CounterBookmarks, 1)
		if err != nil || n != 8 {
			t.Fatalf("AdjustCounter n=%d err=%v", n, err)
		}
	})

	mt.Run("missing article", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		_, err := mongodb.NewArticleRepo(mt.DB).AdjustCounter(context.Background(), primitive.NewObjectID().Hex(), entity.CounterLikes, 1)
		if !errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})

	mt.Run("unknown field", func(mt *mtest.T) {
		_, err := mongodb.NewArticleRepo(mt.DB).AdjustCounter(context.Background(), primitive.NewObjectID().Hex(), "views", 1)
		if !errors.Is(err, entity.ErrInvalidInput) {
			t.Fatalf("err=%v, want ErrInvalidInput", err)
		}
	})
}
