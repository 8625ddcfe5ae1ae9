package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"wardrobe-manager/feature/wardrobe/catalog"
	"wardrobe-manager/feature/wardrobe/models"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// NotAvailable fills name fields of items without metadata.
const NotAvailable = "N/A"

// GenderAll disables gender filtering.
const GenderAll = "ALL"

// Search limits.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrInvalidGender      = errors.New("invalid gender")
	ErrPublishingDisabled = errors.New("publishing requires object storage")
)

// Source provides the resolved catalog.
type Source interface {
	Catalog(ctx context.Context) models.Catalog
	ClearCache(ctx context.Context) error
	URLFor(code string, id int, gender models.Gender, primary, secondary string) string
}

// ItemName is the metadata summary of one item.
type ItemName struct {
	ID        int    `json:"id"`
	Classname string `json:"classname"`
	Name      string `json:"name"`
	Furniline string `json:"furniline"`
}

// Stats summarizes the current catalog.
type Stats struct {
	BuildID         string                        `json:"buildId"`
	Source          models.Source                 `json:"source"`
	TotalCategories int                           `json:"totalCategories"`
	TotalItems      int                           `json:"totalItems"`
	PerCategory     map[string]int                `json:"perCategory"`
	Classifications map[models.Classification]int `json:"classifications"`
}

// SearchResult is one search hit.
type SearchResult struct {
	Item     models.ClassifiedItem `json:"item"`
	Distance int                   `json:"distance"`
	rank     int
	order    int
}

// Service answers wardrobe queries from the resolved catalog.
type Service struct {
	source    Source
	publisher *catalog.Publisher
	logger    *zap.Logger
}

// NewService creates a wardrobe service. publisher may be nil.
func NewService(source Source, publisher *catalog.Publisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, publisher: publisher, logger: logger}
}

// Catalog returns the full resolved catalog.
func (s *Service) Catalog(ctx context.Context) models.Catalog {
	return s.source.Catalog(ctx)
}

// Categories returns every category filtered by gender. Categories left
// without items by the filter are omitted.
func (s *Service) Categories(ctx context.Context, gender string) ([]models.Category, error) {
	g, all, err := parseGenderFilter(gender)
	if err != nil {
		return nil, err
	}
	categories := s.source.Catalog(ctx).Categories
	if all {
		return categories, nil
	}

	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		c.Items = filterGender(c.Items, g)
		if len(c.Items) > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

// Category returns one category filtered by gender. A category the filter
// leaves empty is reported as not found, matching Categories.
func (s *Service) Category(ctx context.Context, code, gender string) (models.Category, error) {
	g, all, err := parseGenderFilter(gender)
	if err != nil {
		return models.Category{}, err
	}
	c, ok := s.source.Catalog(ctx).Category(strings.ToLower(code))
	if !ok {
		return models.Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, code)
	}
	if !all {
		c.Items = filterGender(c.Items, g)
		if len(c.Items) == 0 {
			return models.Category{}, fmt.Errorf("%w: %s has no %s items", ErrCategoryNotFound, code, g)
		}
	}
	return c, nil
}

// PaletteForCategory returns the full palette the category draws colors from.
func (s *Service) PaletteForCategory(ctx context.Context, code string) (models.Palette, error) {
	cat := s.source.Catalog(ctx)
	c, ok := cat.Category(strings.ToLower(code))
	if !ok {
		return models.Palette{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, code)
	}
	p, ok := cat.Palette(c.PaletteID)
	if !ok {
		return models.Palette{ID: c.PaletteID, Colors: []models.Color{}}, nil
	}
	return p, nil
}

// ItemNames returns the metadata names of ids in category code.
// Ids without an item or metadata get N/A placeholders.
func (s *Service) ItemNames(ctx context.Context, code string, ids []int) ([]ItemName, error) {
	c, err := s.Category(ctx, code, GenderAll)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]models.ClassifiedItem, len(c.Items))
	for _, item := range c.Items {
		if _, seen := byID[item.ItemID]; !seen {
			byID[item.ItemID] = item
		}
	}

	out := make([]ItemName, 0, len(ids))
	for _, id := range ids {
		name := ItemName{ID: id, Classname: NotAvailable, Name: NotAvailable, Furniline: NotAvailable}
		if item, ok := byID[id]; ok && item.Classname != "" {
			name.Classname = item.Classname
			name.Name = item.ResolvedName
			if item.CollectionTag != "" {
				name.Furniline = item.CollectionTag
			}
		}
		out = append(out, name)
	}
	return out, nil
}

// Stats counts the categories and items of the catalog.
func (s *Service) Stats(ctx context.Context) Stats {
	cat := s.source.Catalog(ctx)
	stats := Stats{
		BuildID:         cat.BuildID,
		Source:          cat.Source,
		TotalCategories: len(cat.Categories),
		PerCategory:     make(map[string]int, len(cat.Categories)),
		Classifications: make(map[models.Classification]int),
	}
	for _, c := range cat.Categories {
		stats.PerCategory[c.Code] = len(c.Items)
		stats.TotalItems += len(c.Items)
		for _, item := range c.Items {
			stats.Classifications[item.Classification]++
		}
	}
	return stats
}

// Search matches resolved names and figure ids. Exact matches rank first,
// then substrings, then names within a small edit distance.
func (s *Service) Search(ctx context.Context, query string, limit int) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []SearchResult{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	maxDistance := len(query) / 3
	if maxDistance < 1 {
		maxDistance = 1
	}

	var results []SearchResult
	order := 0
	for _, c := range s.source.Catalog(ctx).Categories {
		for _, item := range c.Items {
			order++
			best := SearchResult{Item: item, rank: -1, order: order}
			for _, candidate := range []string{strings.ToLower(item.ResolvedName), item.FigureID} {
				rank, distance, ok := match(query, candidate, maxDistance)
				if !ok {
					continue
				}
				if best.rank < 0 || rank < best.rank || (rank == best.rank && distance < best.Distance) {
					best.rank, best.Distance = rank, distance
				}
			}
			if best.rank >= 0 {
				results = append(results, best)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].rank != results[j].rank {
			return results[i].rank < results[j].rank
		}
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].order < results[j].order
	})
	if len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results
}

func match(query, candidate string, maxDistance int) (rank, distance int, ok bool) {
	switch {
	case candidate == "":
		return 0, 0, false
	case candidate == query:
		return 0, 0, true
	case strings.Contains(candidate, query):
		return 1, 0, true
	}
	d := levenshtein.ComputeDistance(query, candidate)
	if d > maxDistance {
		return 0, 0, false
	}
	return 2, d, true
}

// ImageURL builds an ad-hoc image URL for a known category.
func (s *Service) ImageURL(code string, id int, gender, primary, secondary string) (string, error) {
	code = strings.ToLower(code)
	if !models.IsKnownCategory(code) {
		return "", fmt.Errorf("%w: %s", ErrCategoryNotFound, code)
	}
	return s.source.URLFor(code, id, models.ParseGender(gender), primary, secondary), nil
}

// ClearCache drops every cached resolution step.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.source.ClearCache(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	s.logger.Info("Wardrobe cache cleared")
	return nil
}

// Publish resolves the catalog and uploads it to object storage.
func (s *Service) Publish(ctx context.Context) (catalog.Manifest, error) {
	if s.publisher == nil {
		return catalog.Manifest{}, ErrPublishingDisabled
	}
	return s.publisher.Publish(ctx, s.source.Catalog(ctx))
}

// parseGenderFilter accepts ALL, M, F or U. An empty value means ALL.
func parseGenderFilter(raw string) (models.Gender, bool, error) {
	switch g := strings.ToUpper(strings.TrimSpace(raw)); g {
	case "", GenderAll:
		return "", true, nil
	case string(models.GenderMale), string(models.GenderFemale), string(models.GenderUnisex):
		return models.Gender(g), false, nil
	default:
		return "", false, fmt.Errorf("%w: %s", ErrInvalidGender, raw)
	}
}

// filterGender keeps items of gender g and unisex items.
func filterGender(items []models.ClassifiedItem, g models.Gender) []models.ClassifiedItem {
	out := make([]models.ClassifiedItem, 0, len(items))
	for _, item := range items {
		if item.Gender == g || item.Gender == models.GenderUnisex {
			out = append(out, item)
		}
	}
	return out
}
