package integrity

import (
	"wardrobe-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/server", h.HandleServerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Catalog, Server).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} integrity.Report "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.RunAll(c.Context())
	l.Info("Integrity checks completed", zap.Bool("healthy", report.Healthy()))

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the wardrobe folders exist in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.Context()

	missing, err := h.service.CheckStructure(ctx)
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(result(nil, err))
	}
	if len(missing) == 0 || c.Query("fix") != "true" {
		return c.JSON(fiber.Map{"status": "checked", "missing": missing})
	}

	l.Info("Creating missing folders", zap.Strings("missing", missing))
	if err := h.service.FixStructure(ctx, missing); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"error":   err.Error(),
			"missing": missing,
		})
	}
	return c.JSON(fiber.Map{"status": "fixed", "fixed": missing})
}

// HandleCatalogCheck checks the published catalog objects.
// @Summary Check Published Catalog
// @Description Verify that the published categories and manifest objects are present.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.CheckResult "Catalog Report"
// @Failure 500 {object} integrity.CheckResult "Bucket unavailable"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	missing, err := h.service.CheckCatalog(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Catalog check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(result(nil, err))
	}
	return c.JSON(result(missing, nil))
}

// HandleServerCheck checks server schema integrity.
// @Summary Check Server Schema
// @Description Checks if the cache table schema matches the expected model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
