package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"teslo/internal/models"
	"teslo/internal/services"
	"teslo/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.Validator
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validation.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes go
// through auth.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:term", h.HandleGetProduct)
	productRoutes.Post("/", auth, h.HandleCreateProduct)
	productRoutes.Patch("/:id", auth, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", auth, h.HandleDeleteProduct)
}

// HandleGetProducts returns one page of products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	var page models.Pagination
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, h.logger, validation.Invalid("query", "limit and offset must be integers"))
	}
	if err := h.validate.Struct(page); err != nil {
		return respondError(c, h.logger, err)
	}

	products, err := h.service.GetAllProducts(page)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, models.NewProductResponse(&products[i]))
	}
	return c.JSON(resp)
}

// HandleGetProduct looks a product up by ID or slug.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.FindProduct(c.Params("term"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(models.NewProductResponse(product))
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, h.logger, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, h.logger, err)
	}

	product, err := h.service.CreateProduct(req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewProductResponse(product))
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, h.logger, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, h.logger, err)
	}

	product, err := h.service.UpdateProduct(c.Params("id"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(models.NewProductResponse(product))
}

// HandleDeleteProduct deletes a product and its images.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	msg, err := h.service.DeleteProduct(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": msg})
}
