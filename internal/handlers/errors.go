package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"teslo/internal/apperrors"
	"teslo/internal/services"
	"teslo/internal/validation"
)

// respondError writes the status and message matching err. Unknown errors are
// logged and reported as 500 without their text.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  vErr.Fields,
		})
	case errors.Is(err, apperrors.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, services.ErrCreateProduct):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Could not create product"})
	case errors.Is(err, apperrors.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrTransaction):
		logger.Error("Transaction rolled back", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Update failed, no changes were saved",
		})
	default:
		logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}

func badBody(c *fiber.Ctx, logger *zap.Logger, err error) error {
	logger.Debug("Error parsing request body", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
	})
}
