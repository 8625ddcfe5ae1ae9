package wardrobe

import (
	"wardrobe-manager/feature/wardrobe/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the wardrobe feature around an assembled aggregator.
func NewFeature(source Source, publisher *catalog.Publisher, logger *zap.Logger) *Feature {
	svc := NewService(source, publisher, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "wardrobe"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service to commands.
func (f *Feature) Service() *Service {
	return f.service
}
