package wardrobe

import (
	"errors"
	"strconv"

	"wardrobe-manager/core/logger"
	"wardrobe-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the wardrobe catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the wardrobe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/wardrobe")
	group.Get("/categories", h.HandleGetCategories)
	group.Get("/categories/:code", h.HandleGetCategory)
	group.Get("/categories/:code/palette", h.HandleGetPalette)
	group.Get("/categories/:code/names", h.HandleGetItemNames)
	group.Get("/stats", h.HandleGetStats)
	group.Get("/search", h.HandleSearch)
	group.Get("/image", h.HandleGetImageURL)
	group.Post("/cache/clear", h.HandleClearCache)
	group.Post("/publish", h.HandlePublish)
}

// HandleGetCategories returns every category of the catalog.
// @Summary List Categories
// @Description Get the corrected and classified wardrobe categories, optionally filtered by gender.
// @Tags wardrobe
// @Produce json
// @Param gender query string false "ALL, M, F or U" default(ALL)
// @Success 200 {array} models.Category "Categories"
// @Failure 400 {object} map[string]string "Invalid gender"
// @Router /wardrobe/categories [get]
func (h *Handler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.Context(), c.Query("gender"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(categories)
}

// HandleGetCategory returns one category.
// @Summary Get Category
// @Description Get a single wardrobe category by code.
// @Tags wardrobe
// @Produce json
// @Param code path string true "Category code (e.g. 'ha')"
// @Param gender query string false "ALL, M, F or U" default(ALL)
// @Success 200 {object} models.Category "Category"
// @Failure 400 {object} map[string]string "Invalid gender"
// @Failure 404 {object} map[string]string "Category not found or empty for the gender"
// @Router /wardrobe/categories/{code} [get]
func (h *Handler) HandleGetCategory(c *fiber.Ctx) error {
	category, err := h.service.Category(c.Context(), c.Params("code"), c.Query("gender"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(category)
}

// HandleGetPalette returns the palette of a category.
// @Summary Get Category Palette
// @Description Get the full color palette used by a category.
// @Tags wardrobe
// @Produce json
// @Param code path string true "Category code"
// @Success 200 {object} models.Palette "Palette"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /wardrobe/categories/{code}/palette [get]
func (h *Handler) HandleGetPalette(c *fiber.Ctx) error {
	palette, err := h.service.PaletteForCategory(c.Context(), c.Params("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(palette)
}

// HandleGetItemNames returns metadata names for item ids.
// @Summary Get Item Names
// @Description Get classname, name and furniline for a comma separated list of item ids.
// @Tags wardrobe
// @Produce json
// @Param code path string true "Category code"
// @Param ids query string true "Comma separated item ids"
// @Success 200 {array} wardrobe.ItemName "Names"
// @Failure 400 {object} map[string]string "Missing ids"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /wardrobe/categories/{code}/names [get]
func (h *Handler) HandleGetItemNames(c *fiber.Ctx) error {
	ids := utils.ParseIDList(c.Query("ids"))
	if len(ids) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ids query parameter is required",
		})
	}
	names, err := h.service.ItemNames(c.Context(), c.Params("code"), ids)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(names)
}

// HandleGetStats returns catalog statistics.
// @Summary Get Statistics
// @Description Get category, item and classification counts of the current catalog.
// @Tags wardrobe
// @Produce json
// @Success 200 {object} wardrobe.Stats "Statistics"
// @Router /wardrobe/stats [get]
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats(c.Context()))
}

// HandleSearch searches items by name or figure id.
// @Summary Search Items
// @Description Search items by resolved name or figure id, tolerating small typos.
// @Tags wardrobe
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} wardrobe.SearchResult "Results"
// @Failure 400 {object} map[string]string "Missing query"
// @Router /wardrobe/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q query parameter is required",
		})
	}
	return c.JSON(h.service.Search(c.Context(), query, c.QueryInt("limit", DefaultSearchLimit)))
}

// HandleGetImageURL builds an image URL for one item.
// @Summary Get Image URL
// @Description Build the avatar imaging URL of a single item.
// @Tags wardrobe
// @Produce json
// @Param category query string true "Category code"
// @Param id query int true "Item id"
// @Param gender query string false "M, F or U" default(M)
// @Param color query string false "Primary color id"
// @Param color2 query string false "Secondary color id"
// @Success 200 {object} map[string]string "URL"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /wardrobe/image [get]
func (h *Handler) HandleGetImageURL(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id must be a positive integer",
		})
	}
	url, err := h.service.ImageURL(c.Query("category"), id, c.Query("gender"), c.Query("color"), c.Query("color2"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// HandleClearCache drops the cached catalog and documents.
// @Summary Clear Cache
// @Description Drop every cached resolution step so the next request resolves again.
// @Tags wardrobe
// @Produce json
// @Success 200 {object} map[string]string "Cleared"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wardrobe/cache/clear [post]
func (h *Handler) HandleClearCache(c *fiber.Ctx) error {
	if err := h.service.ClearCache(c.Context()); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}

// HandlePublish uploads the catalog to object storage.
// @Summary Publish Catalog
// @Description Resolve the catalog and upload categories and manifest to the storage bucket.
// @Tags wardrobe
// @Produce json
// @Success 200 {object} catalog.Manifest "Manifest"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wardrobe/publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	manifest, err := h.service.Publish(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(manifest)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidGender):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrCategoryNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrPublishingDisabled):
		status = fiber.StatusServiceUnavailable
	}
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Wardrobe request failed",
			zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
