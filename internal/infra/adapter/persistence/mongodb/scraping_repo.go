package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-website/internal/domain/entity"
	"news-website/internal/repository"
)

var activeOnly = bson.M{"isActive": true}

/*──────────────── categories ────────────────*/

type CategoryRepo struct{ coll *mongo.Collection }

func NewCategoryRepo(db *mongo.Database) repository.CategoryRepository {
	return &CategoryRepo{coll: db.Collection(CategoriesCollection)}
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return repo.list(ctx, bson.M{})
}

func (repo *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	return repo.list(ctx, activeOnly)
}

func (repo *CategoryRepo) list(ctx context.Context, filter bson.M) ([]*entity.Category, error) {
	cats, err := findAll(ctx, repo.coll, filter, byCreatedDesc(), (*categoryDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return cats, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	stamp(&c.CreatedAt, &c.UpdatedAt)
	res, err := repo.coll.InsertOne(ctx, categoryDoc{
		ID:        primitive.NewObjectID(),
		Name:      c.Name,
		IsActive:  c.IsActive,
		Keywords:  nonNil(c.Keywords),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	c.ID = insertedHex(res)
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	d, err := setAndReturn[categoryDoc](ctx, repo.coll, c.ID, bson.M{
		"name":      c.Name,
		"isActive":  c.IsActive,
		"keywords":  nonNil(c.Keywords),
		"updatedAt": c.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return d.toEntity(), nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, repo.coll, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

/*──────────────── keywords ────────────────*/

type KeywordRepo struct{ coll *mongo.Collection }

func NewKeywordRepo(db *mongo.Database) repository.KeywordRepository {
	return &KeywordRepo{coll: db.Collection(KeywordsCollection)}
}

// List returns keywords in natural order; the dashboard never sorted them.
func (repo *KeywordRepo) List(ctx context.Context) ([]*entity.Keyword, error) {
	return repo.list(ctx, bson.M{})
}

func (repo *KeywordRepo) ListActive(ctx context.Context) ([]*entity.Keyword, error) {
	return repo.list(ctx, activeOnly)
}

func (repo *KeywordRepo) list(ctx context.Context, filter bson.M) ([]*entity.Keyword, error) {
	kws, err := findAll(ctx, repo.coll, filter, options.Find(), (*keywordDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return kws, nil
}

func (repo *KeywordRepo) Create(ctx context.Context, k *entity.Keyword) error {
	stamp(&k.CreatedAt, &k.UpdatedAt)
	res, err := repo.coll.InsertOne(ctx, keywordDoc{
		ID:        primitive.NewObjectID(),
		Word:      k.Word,
		Category:  k.Category,
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	k.ID = insertedHex(res)
	return nil
}

func (repo *KeywordRepo) Update(ctx context.Context, k *entity.Keyword) error {
	oid, err := objectID(k.ID)
	if err != nil {
		return err
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"word":      k.Word,
		"category":  k.Category,
		"isActive":  k.IsActive,
		"updatedAt": k.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *KeywordRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, repo.coll, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

/*──────────────── urls ────────────────*/

type SourceURLRepo struct{ coll *mongo.Collection }

func NewSourceURLRepo(db *mongo.Database) repository.SourceURLRepository {
	return &SourceURLRepo{coll: db.Collection(URLsCollection)}
}

func (repo *SourceURLRepo) List(ctx context.Context) ([]*entity.SourceURL, error) {
	us, err := findAll(ctx, repo.coll, bson.M{}, byCreatedDesc(), (*sourceURLDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return us, nil
}

func (repo *SourceURLRepo) Create(ctx context.Context, u *entity.SourceURL) error {
	stamp(&u.CreatedAt, &u.UpdatedAt)
	res, err := repo.coll.InsertOne(ctx, sourceURLDoc{
		ID:        primitive.NewObjectID(),
		URL:       u.URL,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	u.ID = insertedHex(res)
	return nil
}

func (repo *SourceURLRepo) Update(ctx context.Context, u *entity.SourceURL) (*entity.SourceURL, error) {
	d, err := setAndReturn[sourceURLDoc](ctx, repo.coll, u.ID, bson.M{
		"url":       u.URL,
		"isActive":  u.IsActive,
		"updatedAt": u.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return d.toEntity(), nil
}

func (repo *SourceURLRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, repo.coll, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

/*──────────────── scrap configs ────────────────*/

type ScrapConfigRepo struct{ coll *mongo.Collection }

func NewScrapConfigRepo(db *mongo.Database) repository.ScrapConfigRepository {
	return &ScrapConfigRepo{coll: db.Collection(ScrapConfigsCollection)}
}

func (repo *ScrapConfigRepo) List(ctx context.Context) ([]*entity.ScrapConfig, error) {
	return repo.list(ctx, bson.M{})
}

func (repo *ScrapConfigRepo) ListActive(ctx context.Context) ([]*entity.ScrapConfig, error) {
	return repo.list(ctx, activeOnly)
}

func (repo *ScrapConfigRepo) list(ctx context.Context, filter bson.M) ([]*entity.ScrapConfig, error) {
	cfgs, err := findAll(ctx, repo.coll, filter, byCreatedDesc(), (*scrapConfigDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return cfgs, nil
}

func (repo *ScrapConfigRepo) Create(ctx context.Context, c *entity.ScrapConfig) error {
	stamp(&c.CreatedAt, &c.UpdatedAt)
	res, err := repo.coll.InsertOne(ctx, scrapConfigDoc{
		ID:        primitive.NewObjectID(),
		Category:  c.Category,
		Keywords:  nonNil(c.Keywords),
		SourceURL: c.SourceURL,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	c.ID = insertedHex(res)
	return nil
}

func (repo *ScrapConfigRepo) Update(ctx context.Context, c *entity.ScrapConfig) (*entity.ScrapConfig, error) {
	d, err := setAndReturn[scrapConfigDoc](ctx, repo.coll, c.ID, bson.M{
		"category":  c.Category,
		"keywords":  nonNil(c.Keywords),
		"sourceUrl": c.SourceURL,
		"isActive":  c.IsActive,
		"updatedAt": c.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return d.toEntity(), nil
}

func (repo *ScrapConfigRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, repo.coll, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ScrapConfigRepo) MarkRun(ctx context.Context, id string, at time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"lastRunAt": at}})
	if err != nil {
		return fmt.Errorf("MarkRun: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

/*──────────────── hero slides ────────────────*/

type HeroSlideRepo struct{ coll *mongo.Collection }

// NewHeroSlideRepo takes the database holding the landing page content, which
// is not the news database.
func NewHeroSlideRepo(db *mongo.Database) repository.HeroSlideRepository {
	return &HeroSlideRepo{coll: db.Collection(HeroSlidesCollection)}
}

func (repo *HeroSlideRepo) List(ctx context.Context) ([]*entity.HeroSlide, error) {
	ss, err := findAll(ctx, repo.coll, bson.M{}, byCreatedDesc(), (*heroSlideDoc).toEntity)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return ss, nil
}

func (repo *HeroSlideRepo) Create(ctx context.Context, s *entity.HeroSlide) error {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	res, err := repo.coll.InsertOne(ctx, heroSlideDoc{
		ID:          primitive.NewObjectID(),
		Title:       s.Title,
		Tagline:     s.Tagline,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CTALabel:    s.CTALabel,
		CTALink:     s.CTALink,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	s.ID = insertedHex(res)
	return nil
}

func (repo *HeroSlideRepo) Update(ctx context.Context, s *entity.HeroSlide) (*entity.HeroSlide, error) {
	d, err := setAndReturn[heroSlideDoc](ctx, repo.coll, s.ID, bson.M{
		"title":       s.Title,
		"tagline":     s.Tagline,
		"description": s.Description,
		"imageUrl":    s.ImageURL,
		"ctaLabel":    s.CTALabel,
		"ctaLink":     s.CTALink,
		"updatedAt":   s.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return d.toEntity(), nil
}

func (repo *HeroSlideRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, repo.coll, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
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

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
