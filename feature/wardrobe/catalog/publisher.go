package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"wardrobe-manager/core/storage"
	"wardrobe-manager/feature/wardrobe/models"

	"go.uber.org/zap"
)

// Published object names below the publish prefix.
const (
	CategoriesObject = "categories.json"
	ManifestObject   = "manifest.json"
	jsonContentType  = "application/json"
)

// Manifest summarizes a published catalog.
type Manifest struct {
	BuildID     string         `json:"buildId"`
	Source      models.Source  `json:"source"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Categories  int            `json:"categories"`
	Items       int            `json:"items"`
	Counts      map[string]int `json:"counts"`
}

// NewManifest counts the items of cat.
func NewManifest(cat models.Catalog, now time.Time) Manifest {
	m := Manifest{
		BuildID:     cat.BuildID,
		Source:      cat.Source,
		GeneratedAt: now.UTC(),
		Categories:  len(cat.Categories),
		Counts:      make(map[string]int, len(cat.Categories)),
	}
	for _, c := range cat.Categories {
		m.Counts[c.Code] = len(c.Items)
		m.Items += len(c.Items)
	}
	return m
}

// Publisher uploads catalogs to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
	logger *zap.Logger
}

// NewPublisher writes below prefix in bucket.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{client: client, bucket: bucket, prefix: prefix, now: time.Now, logger: logger}
}

// CategoriesPath is the object name of the published categories.
func (p *Publisher) CategoriesPath() string {
	return path.Join(p.prefix, CategoriesObject)
}

// ManifestPath is the object name of the published manifest.
func (p *Publisher) ManifestPath() string {
	return path.Join(p.prefix, ManifestObject)
}

// Publish uploads the categories first and the manifest last, so a manifest
// always describes categories that are already in place.
func (p *Publisher) Publish(ctx context.Context, cat models.Catalog) (Manifest, error) {
	if p.client == nil {
		return Manifest{}, fmt.Errorf("storage client not configured")
	}
	if err := storage.EnsureBucket(ctx, p.client, p.bucket); err != nil {
		return Manifest{}, err
	}

	categories, err := json.Marshal(cat.Categories)
	if err != nil {
		return Manifest{}, fmt.Errorf("encode categories: %w", err)
	}
	if err := storage.PutBytes(ctx, p.client, p.bucket, p.CategoriesPath(), categories, jsonContentType); err != nil {
		return Manifest{}, err
	}

	manifest := NewManifest(cat, p.now())
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("encode manifest: %w", err)
	}
	if err := storage.PutBytes(ctx, p.client, p.bucket, p.ManifestPath(), data, jsonContentType); err != nil {
		return Manifest{}, err
	}

	p.logger.Info("Catalog published",
		zap.String("bucket", p.bucket),
		zap.String("build", manifest.BuildID),
		zap.Int("items", manifest.Items))
	return manifest, nil
}
