package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wardrobe-manager/core/cache"
	"wardrobe-manager/core/fetch"
	"wardrobe-manager/feature/wardrobe/figuredata"
	"wardrobe-manager/feature/wardrobe/furnidata"
	"wardrobe-manager/feature/wardrobe/models"

	"go.uber.org/zap"
)

// Cache keys of the resolution steps.
const (
	VersionKey  = "version"
	MetadataKey = "furnidata"
	CatalogKey  = "catalog"
)

// FigureKey is the cache key of the figure document for build.
func FigureKey(build string) string {
	return "figuredata:" + build
}

// VersionSource resolves the current build id.
type VersionSource interface {
	Resolve(ctx context.Context) string
	Fallback() string
}

// DocumentSource fetches the two source documents.
type DocumentSource interface {
	FetchFigureDocument(ctx context.Context, build string) (string, error)
	FetchMetadataDocument(ctx context.Context) (json.RawMessage, error)
}

// Aggregator is the public entry point of the engine. It never fails:
// any network or parse error replaces the whole cycle with the built-in data set.
type Aggregator struct {
	versions    VersionSource
	documents   DocumentSource
	parser      *figuredata.Parser
	builder     *Builder
	cache       *cache.Cache
	fallbackTTL time.Duration
	logger      *zap.Logger
}

// NewAggregator wires the resolution stages around c.
func NewAggregator(versions VersionSource, documents DocumentSource, parser *figuredata.Parser, builder *Builder, c *cache.Cache, fallbackTTL time.Duration, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		versions:    versions,
		documents:   documents,
		parser:      parser,
		builder:     builder,
		cache:       c,
		fallbackTTL: fallbackTTL,
		logger:      logger,
	}
}

// Catalog returns the cached catalog or runs a resolution cycle.
func (a *Aggregator) Catalog(ctx context.Context) models.Catalog {
	cat, err := cache.GetOrLoad(ctx, a.cache, CatalogKey, a.resolve)
	if err != nil {
		// Only reachable if the embedded data set is broken.
		a.logger.Error("Catalog resolution failed", zap.Error(err))
		return models.Catalog{BuildID: a.versions.Fallback(), Source: models.SourceFallback, Categories: []models.Category{}}
	}
	return cat
}

// GetCategories returns the categories of the current catalog.
func (a *Aggregator) GetCategories(ctx context.Context) []models.Category {
	return a.Catalog(ctx).Categories
}

// URLFor builds an ad-hoc image URL outside the catalog.
func (a *Aggregator) URLFor(code string, id int, gender models.Gender, primary, secondary string) string {
	return a.builder.images.URLFor(code, id, gender, primary, secondary)
}

// ClearCache drops every cached resolution step.
func (a *Aggregator) ClearCache(ctx context.Context) error {
	return a.cache.Clear(ctx)
}

func (a *Aggregator) resolve(ctx context.Context) (models.Catalog, time.Duration, error) {
	started := time.Now()
	cat, ttl, err := a.resolveLive(ctx)
	if err == nil {
		a.logger.Info("Catalog resolved",
			zap.String("build", cat.BuildID),
			zap.Int("categories", len(cat.Categories)),
			zap.Duration("took", time.Since(started)))
		return cat, ttl, nil
	}

	fields := []zap.Field{zap.Error(err)}
	var netErr *fetch.Error
	var parseErr *models.ParseError
	switch {
	case errors.As(err, &netErr):
		fields = append(fields, zap.String("url", netErr.URL), zap.Int("status", netErr.StatusCode))
	case errors.As(err, &parseErr):
		fields = append(fields, zap.String("document", parseErr.Document))
	}
	a.logger.Warn("Using fallback data set", fields...)

	cat, err = a.Fallback()
	if err != nil {
		return models.Catalog{}, 0, err
	}
	return cat, a.fallbackTTL, nil
}

func (a *Aggregator) resolveLive(ctx context.Context) (models.Catalog, time.Duration, error) {
	build, err := cache.GetOrLoad(ctx, a.cache, VersionKey, func(ctx context.Context) (string, time.Duration, error) {
		build := a.versions.Resolve(ctx)
		return build, a.ttlFor(build), nil
	})
	if err != nil {
		return models.Catalog{}, 0, fmt.Errorf("resolve version: %w", err)
	}

	figureKey := FigureKey(build)
	figure, err := cache.GetOrLoad(ctx, a.cache, figureKey, func(ctx context.Context) (string, time.Duration, error) {
		text, err := a.documents.FetchFigureDocument(ctx, build)
		return text, 0, err
	})
	if err != nil {
		return models.Catalog{}, 0, fmt.Errorf("fetch figure document: %w", err)
	}

	metadata, err := cache.GetOrLoad(ctx, a.cache, MetadataKey, func(ctx context.Context) (json.RawMessage, time.Duration, error) {
		raw, err := a.documents.FetchMetadataDocument(ctx)
		return raw, 0, err
	})
	if err != nil {
		return models.Catalog{}, 0, fmt.Errorf("fetch metadata document: %w", err)
	}

	doc, err := a.parser.Parse([]byte(figure))
	if err != nil {
		a.forget(ctx, figureKey)
		return models.Catalog{}, 0, err
	}
	idx, err := furnidata.Build(metadata)
	if err != nil {
		a.forget(ctx, MetadataKey)
		return models.Catalog{}, 0, err
	}

	return a.builder.Build(doc, idx, build, models.SourceLive), a.ttlFor(build), nil
}

// Fallback builds the catalog from the embedded data set.
func (a *Aggregator) Fallback() (models.Catalog, error) {
	doc, err := a.parser.Parse(fallbackFigureData)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("embedded figure document: %w", err)
	}
	idx, err := furnidata.Build(fallbackMetadata)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("embedded metadata document: %w", err)
	}
	return a.builder.Build(doc, idx, a.versions.Fallback(), models.SourceFallback), nil
}

// ttlFor shortens the lifetime of anything derived from the fallback build id.
func (a *Aggregator) ttlFor(build string) time.Duration {
	if build == a.versions.Fallback() {
		return a.fallbackTTL
	}
	return 0
}

func (a *Aggregator) forget(ctx context.Context, key string) {
	if err := a.cache.Delete(ctx, key); err != nil {
		a.logger.Warn("Cache delete failed", zap.String("key", key), zap.Error(err))
	}
}
