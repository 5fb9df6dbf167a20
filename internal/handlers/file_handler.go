package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"teslo/internal/services"
	"teslo/internal/validation"
)

// imageField is the multipart field carrying the upload.
const imageField = "image"

// FileHandler handles product image uploads and downloads.
type FileHandler struct {
	service *services.FileService
	logger  *zap.Logger
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(service *services.FileService, logger *zap.Logger) *FileHandler {
	return &FileHandler{service: service, logger: logger}
}

// RegisterRoutes registers the file routes.
func (h *FileHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	fileRoutes := router.Group("/files")
	fileRoutes.Post("/product", auth, h.HandleUploadProductImage)
	fileRoutes.Get("/product/:imageName", h.HandleGetProductImage)
}

// HandleUploadProductImage stores the uploaded image.
func (h *FileHandler) HandleUploadProductImage(c *fiber.Ctx) error {
	fh, err := c.FormFile(imageField)
	if err != nil {
		return respondError(c, h.logger, validation.Invalid(imageField, "make sure that the file is an image"))
	}

	f, err := fh.Open()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	defer f.Close()

	resp, err := h.service.UploadProductImage(fh.Filename, f)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleGetProductImage streams a stored image.
func (h *FileHandler) HandleGetProductImage(c *fiber.Ctx) error {
	rc, contentType, err := h.service.OpenProductImage(c.Params("imageName"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	// The stream is closed once the response is written.
	return c.SendStream(rc)
}
