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

func TestCategoryRepo_UpdateReturnsDocument(t *testing.T) {
	mt := newMock(t)

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Markets"},
			{Key: "isActive", Value: false},
		}}))

		got, err := mongodb.NewCategoryRepo(mt.DB).Update(context.Background(), &entity.Category{ID: oid.Hex(), Name: "Markets"})
		if err != nil {
			t.Fatalf("Update err=%v", err)
		}
		if got.Name != "Markets" || got.IsActive || got.Keywords == nil {
			t.Errorf("unexpected category: %+v", got)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		_, err := mongodb.NewCategoryRepo(mt.DB).Update(context.Background(), &entity.Category{ID: primitive.NewObjectID().Hex()})
		if !errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})
}

func TestKeywordRepo_Update(t *testing.T) {
	mt := newMock(t)

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}))
		err := mongodb.NewKeywordRepo(mt.DB).Update(context.Background(), &entity.Keyword{ID: primitive.NewObjectID().Hex(), Word: "ipo"})
		if err != nil {
			t.Fatalf("Update err=%v", err)
		}
	})

	mt.Run("unmatched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := mongodb.NewKeywordRepo(mt.DB).Update(context.Background(), &entity.Keyword{ID: primitive.NewObjectID().Hex(), Word: "ipo"})
		if !errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})
}

func TestScrapConfigRepo(t *testing.T) {
	mt := newMock(t)

	mt.Run("list active", func(mt *mtest.T) {
		last := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newsarchives.scrapConfigs", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "category", Value: "IPO"},
			{Key: "keywords", Value: bson.A{"ipo", "listing"}},
			{Key: "sourceUrl", Value: "https://example.com/feed"},
			{Key: "isActive", Value: true},
			{Key: "lastRunAt", Value: last},
		}))

		got, err := mongodb.NewScrapConfigRepo(mt.DB).ListActive(context.Background())
		if err != nil || len(got) != 1 {
			t.Fatalf("ListActive got=%v err=%v", got, err)
		}
		if got[0].LastRunAt == nil || !got[0].LastRunAt.Equal(last) || len(got[0].Keywords) != 2 {
			t.Errorf("unexpected config: %+v", got[0])
		}
	})

	mt.Run("mark run", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		if err := mongodb.NewScrapConfigRepo(mt.DB).MarkRun(context.Background(), primitive.NewObjectID().Hex(), time.Now()); err != nil {
			t.Fatalf("MarkRun err=%v", err)
		}
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		cfg := &entity.ScrapConfig{Category: "IPO", Keywords: []string{"ipo"}, SourceURL: "https://example.com/feed", IsActive: true}
		if err := mongodb.NewScrapConfigRepo(mt.DB).Create(context.Background(), cfg); err != nil {
			t.Fatalf("Create err=%v", err)
		}
		if !entity.IsValidID(cfg.ID) || cfg.CreatedAt.IsZero() {
			t.Errorf("unexpected config after create: %+v", cfg)
		}
	})
}

func TestSourceURLAndHeroSlideRepo_Delete(t *testing.T) {
	mt := newMock(t)

	mt.Run("url missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := mongodb.NewSourceURLRepo(mt.DB).Delete(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})

	mt.Run("slide deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		if err := mongodb.NewHeroSlideRepo(mt.DB).Delete(context.Background(), primitive.NewObjectID().Hex()); err != nil {
			t.Fatalf("Delete err=%v", err)
		}
	})

	mt.Run("invalid id never reaches the server", func(mt *mtest.T) {
		err := mongodb.NewHeroSlideRepo(mt.DB).Delete(context.Background(), "abc")
		if !errors.Is(err, entity.ErrInvalidID) {
			t.Fatalf("err=%v, want ErrInvalidID", err)
		}
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMock(t)

	mt.Run("creates every index set", func(mt *mtest.T) {
		for i := 0; i < 7; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}
		if err := mongodb.EnsureIndexes(context.Background(), mt.DB, mt.DB); err != nil {
			t.Fatalf("EnsureIndexes err=%v", err)
		}
	})
}
