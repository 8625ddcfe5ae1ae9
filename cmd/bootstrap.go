package cmd

import (
	"fmt"

	"wardrobe-manager/core/cache"
	"wardrobe-manager/core/config"
	"wardrobe-manager/core/database"
	"wardrobe-manager/core/fetch"
	"wardrobe-manager/core/logger"
	"wardrobe-manager/core/storage"
	"wardrobe-manager/feature/wardrobe/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the dependencies shared by every command.
type runtime struct {
	cfg        *config.Config
	logger     *zap.Logger
	db         *gorm.DB
	client     storage.Client
	aggregator *catalog.Aggregator
	publisher  *catalog.Publisher
}

// bootstrap loads configuration and wires the catalog engine. The database
// and the storage client are optional unless the cache backend needs them.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Storage client unavailable, publishing disabled", zap.Error(err))
	} else {
		rt.client = client
		rt.publisher = catalog.NewPublisher(client, cfg.Storage.Bucket, cfg.Wardrobe.PublishPrefix, logg.Named("publisher"))
	}

	store, err := cache.OpenStore(cfg.Wardrobe.CacheBackend, cache.Backends{
		DB:     rt.db,
		Client: rt.client,
		Bucket: cfg.Storage.Bucket,
		Prefix: cfg.Wardrobe.PublishPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache store: %w", err)
	}
	logg.Info("Cache store ready", zap.String("backend", cfg.Wardrobe.CacheBackend))

	getter := fetch.NewClient(fetch.Config{TimeoutSeconds: cfg.Wardrobe.TimeoutSeconds}, logg.Named("fetch"))
	rt.aggregator = catalog.New(cfg.Wardrobe, getter, store, cache.SystemClock, logg.Named("wardrobe"))

	return rt, nil
}

// publishedObjects lists the object names written by the publisher.
func (rt *runtime) publishedObjects() []string {
	if rt.publisher == nil {
		return nil
	}
	return []string{rt.publisher.CategoriesPath(), rt.publisher.ManifestPath()}
}
