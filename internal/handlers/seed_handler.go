package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"teslo/internal/services"
)

// SeedHandler exposes the development seed.
type SeedHandler struct {
	service *services.SeedService
	logger  *zap.Logger
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(service *services.SeedService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{service: service, logger: logger}
}

// RegisterRoutes registers GET /seed. Callers must not register it in production.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleRunSeed)
}

// HandleRunSeed wipes and reloads the fixture products.
func (h *SeedHandler) HandleRunSeed(c *fiber.Ctx) error {
	msg, err := h.service.RunSeed()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": msg})
}
