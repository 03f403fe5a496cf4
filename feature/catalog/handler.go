package catalog

import (
	"errors"

	"catalog-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service    *Service
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, reconciler *Reconciler, logger *zap.Logger) *Handler {
	return &Handler{service: service, reconciler: reconciler, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/products")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Post("/manual", h.HandleManual)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns all products with references expanded.
// @Summary List Products
// @Description List all products with brand, category, seller, and tags expanded.
// @Tags products
// @Produce json
// @Success 200 {object} map[string]interface{} "Products"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/products [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	products, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Product listing failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to list products", err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// HandleGet returns one product with all related records.
// @Summary Get Product
// @Description Get a single product with variants, media, attributes, reviews, and pricing.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{} "Product Detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/products/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusBadRequest, "invalid product id", nil)
	}

	detail, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "product not found", nil)
		}
		l.Error("Product read failed", zap.Int("id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to load product", err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"product":    detail.Product,
		"variants":   detail.Variants,
		"media":      detail.Media,
		"attributes": detail.Attributes,
		"reviews":    detail.Reviews,
		"pricing":    detail.Pricing,
	})
}

// HandleCreate stores a new product from the raw request document.
// @Summary Create Product
// @Description Create a product from raw fields. Does not run reconciliation.
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Created Product"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /api/products [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	product, err := h.service.Create(c.Context(), fields)
	if err != nil {
		if IsValidation(err) {
			return respondError(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		l.Error("Product creation failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleUpdate applies a partial document to an existing product.
// @Summary Update Product
// @Description Partially update a product by id.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{} "Updated Product"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/products/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusBadRequest, "invalid product id", nil)
	}

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	product, err := h.service.Update(c.Context(), uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "product not found", nil)
		}
		if IsValidation(err) {
			return respondError(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		l.Error("Product update failed", zap.Int("id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to update product", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleDelete removes a product. Child records are not cascaded.
// @Summary Delete Product
// @Description Delete a product by id. Variants, media, and attributes remain.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/products/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusBadRequest, "invalid product id", nil)
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "product not found", nil)
		}
		l.Error("Product deletion failed", zap.Int("id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to delete product", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "product deleted",
	})
}

// HandleManual reconciles a single bundle submitted directly by the caller.
// @Summary Submit Product Bundle
// @Description Reconcile a loosely structured product bundle into the catalog.
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Canonical Product"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/products/manual [post]
func (h *Handler) HandleManual(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var bundle Bundle
	if err := c.BodyParser(&bundle); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid bundle document", err)
	}

	product, err := h.reconciler.Reconcile(c.Context(), bundle)
	if err != nil {
		if IsValidation(err) {
			return respondError(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		l.Error("Bundle reconciliation failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to reconcile bundle", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// respondError writes the uniform error body. The underlying error, when
// present, is echoed as details.
func respondError(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	return c.Status(status).JSON(body)
}
