// Package store selects the storage backend named by DB_DRIVER and builds
// every repository on top of it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	mongoRepo "news-website/internal/infra/adapter/persistence/mongodb"
	pgRepo "news-website/internal/infra/adapter/persistence/postgres"
	"news-website/internal/infra/db"
	"news-website/internal/repository"
	"news-website/pkg/config"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Repositories is the full set of ports backed by one database.
type Repositories struct {
	Driver       string
	Articles     repository.ArticleRepository
	BlogPosts    repository.BlogPostRepository
	Comments     repository.CommentRepository
	Categories   repository.CategoryRepository
	Keywords     repository.KeywordRepository
	SourceURLs   repository.SourceURLRepository
	ScrapConfigs repository.ScrapConfigRepository
	HeroSlides   repository.HeroSlideRepository

	ping  func(context.Context) error
	close func(context.Context) error
}

// Ping checks the backend; it backs the /health and /ready probes.
func (r *Repositories) Ping(ctx context.Context) error { return r.ping(ctx) }

// Close releases the pool or client.
func (r *Repositories) Close(ctx context.Context) error { return r.close(ctx) }

// Open connects to the backend named by DB_DRIVER (mongo by default),
// prepares its schema and returns the repositories.
func Open(ctx context.Context) (*Repositories, error) {
	driver := strings.ToLower(config.GetEnvString("DB_DRIVER", DriverMongo))
	switch driver {
	case DriverMongo:
		cfg := db.MongoConfigFromEnv()
		client, err := db.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		news, hero := client.Database(cfg.Database), client.Database(cfg.HeroDatabase)
		if err := mongoRepo.EnsureIndexes(ctx, news, hero); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return FromMongo(client, news, hero), nil

	case DriverPostgres:
		sqlDB, err := db.OpenPostgres(ctx, config.GetEnvString("DATABASE_URL", ""))
		if err != nil {
			return nil, err
		}
		if err := db.MigrateUp(sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return FromSQL(sqlDB), nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want %s or %s)", driver, DriverMongo, DriverPostgres)
	}
}

// FromMongo wires the MongoDB adapters. Hero slides live in their own database.
func FromMongo(client *mongo.Client, news, hero *mongo.Database) *Repositories {
	slog.Info("storage backend selected", slog.String("driver", DriverMongo))
	return &Repositories{
		Driver:       DriverMongo,
		Articles:     mongoRepo.NewArticleRepo(news),
		BlogPosts:    mongoRepo.NewBlogPostRepo(news),
		Comments:     mongoRepo.NewCommentRepo(news),
		Categories:   mongoRepo.NewCategoryRepo(news),
		Keywords:     mongoRepo.NewKeywordRepo(news),
		SourceURLs:   mongoRepo.NewSourceURLRepo(news),
		ScrapConfigs: mongoRepo.NewScrapConfigRepo(news),
		HeroSlides:   mongoRepo.NewHeroSlideRepo(hero),
		ping:         func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
		close:        client.Disconnect,
	}
}

// FromSQL wires the PostgreSQL adapters over an open pool.
func FromSQL(sqlDB *sql.DB) *Repositories {
	slog.Info("storage backend selected", slog.String("driver", DriverPostgres))
	return &Repositories{
		Driver:       DriverPostgres,
		Articles:     pgRepo.NewArticleRepo(sqlDB),
		BlogPosts:    pgRepo.NewBlogPostRepo(sqlDB),
		Comments:     pgRepo.NewCommentRepo(sqlDB),
		Categories:   pgRepo.NewCategoryRepo(sqlDB),
		Keywords:     pgRepo.NewKeywordRepo(sqlDB),
		SourceURLs:   pgRepo.NewSourceURLRepo(sqlDB),
		ScrapConfigs: pgRepo.NewScrapConfigRepo(sqlDB),
		HeroSlides:   pgRepo.NewHeroSlideRepo(sqlDB),
		ping:         sqlDB.PingContext,
		close:        func(context.Context) error { return sqlDB.Close() },
	}
}
