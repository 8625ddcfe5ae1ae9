package catalog

import (
	"wardrobe-manager/core/cache"
	"wardrobe-manager/feature/wardrobe/correction"
	"wardrobe-manager/feature/wardrobe/figuredata"
	"wardrobe-manager/feature/wardrobe/gamedata"
	"wardrobe-manager/feature/wardrobe/imaging"

	"go.uber.org/zap"
)

// New assembles an Aggregator from configuration. getter performs the HTTP
// requests and store persists cache entries.
func New(cfg Config, getter gamedata.Getter, store cache.Store, clock cache.Clock, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	versions := gamedata.NewVersionResolver(getter, cfg.VersionEndpoints(), cfg.FallbackBuild, logger.Named("version"))
	documents := gamedata.NewDocumentFetcher(getter, cfg.FigureDataURL, cfg.FurniDataURL)
	builder := NewBuilder(
		correction.NewLayer(correction.DefaultTables(), logger.Named("correction")),
		imaging.NewGenerator(cfg.ImagingURL),
	)
	c := cache.New(store, cfg.CacheTTL, clock, logger.Named("cache"))
	return NewAggregator(versions, documents, figuredata.NewParser(logger.Named("figuredata")), builder, c, cfg.FallbackTTL, logger)
}
