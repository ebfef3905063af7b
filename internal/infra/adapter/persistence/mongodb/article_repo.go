package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
)

// listProjection is the field set returned by article listings.
var listProjection = bson.M{
	"title":          1,
	"content":        1,
	"category":       1,
	"published_date": 1,
	"source":         1,
	"image":          1,
	"likes":          1,
	"bookmarks":      1,
}

var byPublishedDesc = bson.D{{Key: "published_date", Value: -1}}

type ArticleRepo struct{ coll *mongo.Collection }

func NewArticleRepo(db *mongo.Database) repository.ArticleRepository {
	return &ArticleRepo{coll: db.Collection(ArticlesCollection)}
}

func (repo *ArticleRepo) List(ctx context.Context, f entity.ArticleFilter) ([]*entity.Article, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.ExcludeID != "" {
		oid, err := objectID(f.ExcludeID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	opts := options.Find().
		SetSort(byPublishedDesc).
		SetProjection(listProjection)
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	arts, err := findAll(ctx, repo.coll, filter, opts, (*articleDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return arts, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return repo.one(ctx, "Get", bson.M{"_id": oid}, nil)
}

func (repo *ArticleRepo) FindByField(ctx context.Context, value string) (*entity.Article, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"slug": value},
		bson.M{"title": value},
	}}
	return repo.one(ctx, "FindByField", filter, byPublishedDesc)
}

func (repo *ArticleRepo) FindByTitlePattern(ctx context.Context, pattern string) (*entity.Article, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}}
	return repo.one(ctx, "FindByTitlePattern", filter, byPublishedDesc)
}

func (repo *ArticleRepo) Latest(ctx context.Context) (*entity.Article, error) {
	return repo.one(ctx, "Latest", bson.M{}, byPublishedDesc)
}

func (repo *ArticleRepo) one(ctx context.Context, op string, filter bson.M, sort bson.D) (*entity.Article, error) {
	opts := options.FindOne()
	if sort != nil {
		opts.SetSort(sort)
	}
	d, err := findOne[articleDoc](repo.coll.FindOne(ctx, filter, opts))
	if errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d.toEntity(), nil
}

func (repo *ArticleRepo) ExistsByURL(ctx context.Context, source string) (bool, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.M{"source": source}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("ExistsByURL: %w", err)
	}
	return n > 0, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	d := articleDoc{
		ID:            primitive.NewObjectID(),
		Title:         a.Title,
		Content:       a.Content,
		Category:      a.Category,
		PublishedDate: a.PublishedDate,
		Source:        a.Source,
		Image:         a.Image,
		Author:        a.Author,
		Slug:          a.Slug,
		Summary:       a.Summary,
		Likes:         a.Likes,
		Bookmarks:     a.Bookmarks,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	res, err := repo.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	a.ID = insertedHex(res)
	return nil
}

// AdjustCounter uses a pipeline update so the clamp at zero happens on the
// server in the same write as the increment.
func (repo *ArticleRepo) AdjustCounter(ctx context.Context, id, field string, delta int64) (int64, error) {
	if field != entity.CounterLikes && field != entity.CounterBookmarks {
		return 0, fmt.Errorf("AdjustCounter: unknown counter %q: %w", field, entity.ErrInvalidInput)
	}
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			field: bson.M{"$max": bson.A{
				0,
				bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$" + field, 0}}, delta}},
			}},
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{field: 1})
	d, err := findOne[articleDoc](repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts))
	if errors.Is(err, entity.ErrNotFound) {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("AdjustCounter: %w", err)
	}
	if field == entity.CounterLikes {
		return d.Likes, nil
	}
	return d.Bookmarks, nil
}
