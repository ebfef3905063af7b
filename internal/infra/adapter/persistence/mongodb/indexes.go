package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func desc(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: -1}}}
}

func asc(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
}

// EnsureIndexes creates the indexes the listings and lookups rely on.
// CreateMany is idempotent for identical specs, so this runs on every start.
func EnsureIndexes(ctx context.Context, news, hero *mongo.Database) error {
	plan := []struct {
		db     *mongo.Database
		coll   string
		models []mongo.IndexModel
	}{
		{news, ArticlesCollection, []mongo.IndexModel{
			desc("published_date"),
			{Keys: bson.D{{Key: "source", Value: 1}}, Options: options.Index().SetSparse(true)},
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetSparse(true)},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "published_date", Value: -1}}},
		}},
		{news, BlogPostsCollection, []mongo.IndexModel{desc("createdAt")}},
		{news, CommentsCollection, []mongo.IndexModel{asc("blogPostId"), desc("createdAt")}},
		{news, CategoriesCollection, []mongo.IndexModel{desc("createdAt")}},
		{news, KeywordsCollection, []mongo.IndexModel{asc("category")}},
		{news, ScrapConfigsCollection, []mongo.IndexModel{desc("createdAt"), asc("isActive")}},
		{hero, HeroSlidesCollection, []mongo.IndexModel{desc("createdAt")}},
	}
	for _, p := range plan {
		if _, err := p.db.Collection(p.coll).Indexes().CreateMany(ctx, p.models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", p.coll, err)
		}
	}
	return nil
}
