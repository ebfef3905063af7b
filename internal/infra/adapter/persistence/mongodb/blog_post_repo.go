package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
)

type BlogPostRepo struct{ coll *mongo.Collection }

func NewBlogPostRepo(db *mongo.Database) repository.BlogPostRepository {
	return &BlogPostRepo{coll: db.Collection(BlogPostsCollection)}
}

func (repo *BlogPostRepo) List(ctx context.Context, limit int) ([]*entity.BlogPost, error) {
	opts := byCreatedDesc()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	posts, err := findAll(ctx, repo.coll, bson.M{}, opts, (*blogPostDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return posts, nil
}

func (repo *BlogPostRepo) Get(ctx context.Context, id string) (*entity.BlogPost, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	d, err := findOne[blogPostDoc](repo.coll.FindOne(ctx, bson.M{"_id": oid}))
	if errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return d.toEntity(), nil
}

func (repo *BlogPostRepo) Create(ctx context.Context, p *entity.BlogPost) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	d := newBlogPostDoc(p)
	d.ID = primitive.NewObjectID()
	res, err := repo.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	p.ID = insertedHex(res)
	return nil
}

func (repo *BlogPostRepo) Update(ctx context.Context, p *entity.BlogPost) error {
	oid, err := objectID(p.ID)
	if err != nil {
		return err
	}
	d := newBlogPostDoc(p)
	set := bson.M{
		"title":       d.Title,
		"content":     d.Content,
		"tags":        d.Tags,
		"image":       d.Image,
		"subtitle":    d.Subtitle,
		"author":      d.Author,
		"readingTime": d.ReadingTime,
	}
	if d.UpdatedAt != nil {
		set["updatedAt"] = *d.UpdatedAt
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return entity.ErrNoChanges
	}
	return nil
}

func (repo *BlogPostRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, repo.coll, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidID) {
			return err
		}
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

type CommentRepo struct{ coll *mongo.Collection }

func NewCommentRepo(db *mongo.Database) repository.CommentRepository {
	return &CommentRepo{coll: db.Collection(CommentsCollection)}
}

func (repo *CommentRepo) List(ctx context.Context, blogPostID string) ([]*entity.Comment, error) {
	filter := bson.M{}
	if blogPostID != "" {
		filter["blogPostId"] = blogPostID
	}
	cs, err := findAll(ctx, repo.coll, filter, byCreatedDesc(), (*commentDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return cs, nil
}

func (repo *CommentRepo) Get(ctx context.Context, id string) (*entity.Comment, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	d, err := findOne[commentDoc](repo.coll.FindOne(ctx, bson.M{"_id": oid}))
	if errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return d.toEntity(), nil
}

func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	d := commentDoc{
		ID:         primitive.NewObjectID(),
		BlogPostID: c.BlogPostID,
		Author:     c.Author,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
	res, err := repo.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	c.ID = insertedHex(res)
	return nil
}

func (repo *CommentRepo) UpdateContent(ctx context.Context, id, content string, at time.Time) (*entity.Comment, error) {
	d, err := setAndReturn[commentDoc](ctx, repo.coll, id, bson.M{"content": content, "updatedAt": at})
	if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidID) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateContent: %w", err)
	}
	return d.toEntity(), nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, repo.coll, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidID) {
			return err
		}
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
