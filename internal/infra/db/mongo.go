package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"news-website/pkg/config"
)

// MongoConfig describes the MongoDB deployment and the databases in use.
type MongoConfig struct {
	URI            string
	Database       string
	HeroDatabase   string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// MongoConfigFromEnv reads MONGODB_* variables. The hero slides live in a
// separate database, which defaults to the one the landing page has used.
func MongoConfigFromEnv() MongoConfig {
	return MongoConfig{
		URI:            config.GetEnvString("MONGODB_URI", ""),
		Database:       config.GetEnvString("MONGODB_DB", "newsarchives"),
		HeroDatabase:   config.GetEnvString("MONGODB_HERO_DB", "ipo-market"),
		MaxPoolSize:    uint64(positiveInt(config.GetEnvInt("MONGODB_MAX_POOL_SIZE", 100), 100)),
		ConnectTimeout: positiveDuration(config.GetEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second), 10*time.Second),
	}
}

// ConnectMongo connects and pings the primary. The caller owns Disconnect.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("MONGODB_URI not set")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	slog.Info("mongodb connection established",
		slog.String("database", cfg.Database),
		slog.String("hero_database", cfg.HeroDatabase),
		slog.Uint64("max_pool_size", cfg.MaxPoolSize))
	return client, nil
}
