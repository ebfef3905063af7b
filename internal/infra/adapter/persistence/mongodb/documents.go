// Package mongodb implements the repository ports on MongoDB. Documents keep the
// field names the admin dashboard has always written, so existing collections
// are read as-is.
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
)

// Collection names.
const (
	ArticlesCollection     = "articles"
	BlogPostsCollection    = "blogposts"
	CommentsCollection     = "comments"
	CategoriesCollection   = "categories"
	KeywordsCollection     = "keywords"
	URLsCollection         = "urls"
	ScrapConfigsCollection = "scrapConfigs"
	HeroSlidesCollection   = "hero-slides"
)

type articleDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Content       string             `bson:"content"`
	Category      string             `bson:"category"`
	PublishedDate time.Time          `bson:"published_date"`
	Source        string             `bson:"source"`
	Image         string             `bson:"image"`
	Author        string             `bson:"author,omitempty"`
	Slug          string             `bson:"slug,omitempty"`
	Summary       string             `bson:"summary,omitempty"`
	Likes         int64              `bson:"likes"`
	Bookmarks     int64              `bson:"bookmarks"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty"`
}

func (d *articleDoc) toEntity() *entity.Article {
	return &entity.Article{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Content:       d.Content,
		Category:      d.Category,
		PublishedDate: d.PublishedDate,
		Source:        d.Source,
		Image:         d.Image,
		Author:        d.Author,
		Slug:          d.Slug,
		Summary:       d.Summary,
		Likes:         d.Likes,
		Bookmarks:     d.Bookmarks,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type blogPostDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	Tags        []string           `bson:"tags"`
	Image       string             `bson:"image,omitempty"`
	Subtitle    string             `bson:"subtitle,omitempty"`
	Author      *postAuthorDoc     `bson:"author,omitempty"`
	ReadingTime string             `bson:"readingTime,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty"`
}

type postAuthorDoc struct {
	Name   string `bson:"name"`
	Avatar string `bson:"avatar"`
}

func (d *blogPostDoc) toEntity() *entity.BlogPost {
	p := &entity.BlogPost{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Content:     d.Content,
		Tags:        d.Tags,
		Image:       d.Image,
		Subtitle:    d.Subtitle,
		ReadingTime: d.ReadingTime,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if d.Author != nil {
		p.Author = &entity.PostAuthor{Name: d.Author.Name, Avatar: d.Author.Avatar}
	}
	return p
}

func newBlogPostDoc(p *entity.BlogPost) *blogPostDoc {
	d := &blogPostDoc{
		Title:       p.Title,
		Content:     p.Content,
		Tags:        p.Tags,
		Image:       p.Image,
		Subtitle:    p.Subtitle,
		ReadingTime: p.ReadingTime,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if p.Author != nil {
		d.Author = &postAuthorDoc{Name: p.Author.Name, Avatar: p.Author.Avatar}
	}
	return d
}

type commentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BlogPostID string             `bson:"blogPostId"`
	Author     string             `bson:"author"`
	Content    string             `bson:"content"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty"`
}

func (d *commentDoc) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:         d.ID.Hex(),
		BlogPostID: d.BlogPostID,
		Author:     d.Author,
		Content:    d.Content,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type categoryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	IsActive  bool               `bson:"isActive"`
	Keywords  []string           `bson:"keywords"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *categoryDoc) toEntity() *entity.Category {
	kw := d.Keywords
	if kw == nil {
		kw = []string{}
	}
	return &entity.Category{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		IsActive:  d.IsActive,
		Keywords:  kw,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type keywordDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Word      string             `bson:"word"`
	Category  string             `bson:"category,omitempty"`
	IsActive  bool               `bson:"isActive"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *keywordDoc) toEntity() *entity.Keyword {
	return &entity.Keyword{
		ID:        d.ID.Hex(),
		Word:      d.Word,
		Category:  d.Category,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type sourceURLDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	URL       string             `bson:"url"`
	IsActive  bool               `bson:"isActive"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *sourceURLDoc) toEntity() *entity.SourceURL {
	return &entity.SourceURL{
		ID:        d.ID.Hex(),
		URL:       d.URL,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type scrapConfigDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Category  string             `bson:"category"`
	Keywords  []string           `bson:"keywords"`
	SourceURL string             `bson:"sourceUrl"`
	IsActive  bool               `bson:"isActive"`
	LastRunAt *time.Time         `bson:"lastRunAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *scrapConfigDoc) toEntity() *entity.ScrapConfig {
	kw := d.Keywords
	if kw == nil {
		kw = []string{}
	}
	return &entity.ScrapConfig{
		ID:        d.ID.Hex(),
		Category:  d.Category,
		Keywords:  kw,
		SourceURL: d.SourceURL,
		IsActive:  d.IsActive,
		LastRunAt: d.LastRunAt,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type heroSlideDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Tagline     string             `bson:"tagline"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"imageUrl"`
	CTALabel    string             `bson:"ctaLabel"`
	CTALink     string             `bson:"ctaLink"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *heroSlideDoc) toEntity() *entity.HeroSlide {
	return &entity.HeroSlide{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Tagline:     d.Tagline,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CTALabel:    d.CTALabel,
		CTALink:     d.CTALink,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

/*──────────────── helpers ────────────────*/

func objectID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, entity.ErrInvalidID
	}
	return oid, nil
}

// byCreatedDesc is the default listing order of the admin collections.
func byCreatedDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// findAll decodes every document matched by filter and converts it with conv.
func findAll[D any, E any](ctx context.Context, coll *mongo.Collection, filter any, opts *options.FindOptions, conv func(*D) *E) ([]*E, error) {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*E, 0)
	for cur.Next(ctx) {
		var d D
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, conv(&d))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// findOne decodes a single document, reporting a miss as entity.ErrNotFound.
func findOne[D any](res *mongo.SingleResult) (*D, error) {
	var d D
	if err := res.Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// deleteByID removes one document, reporting a miss as entity.ErrNotFound.
func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// setAndReturn applies $set and returns the document as stored afterwards.
func setAndReturn[D any](ctx context.Context, coll *mongo.Collection, id string, set bson.M) (*D, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res := coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	return findOne[D](res)
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}
