// Package app assembles the HTTP application from the wired services.
package app

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"teslo/internal/handlers"
	"teslo/internal/middleware"
)

// New builds the fiber app with every route registered under /api, plus
// /health and /metrics. The seed route is left out in production.
func New(deps *Container) *fiber.App {
	logger := deps.Logger

	app := fiber.New(fiber.Config{
		AppName:               "teslo",
		BodyLimit:             deps.Config.UploadMaxBytes,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
		UnescapePath:          true,
	})

	metrics := middleware.NewMetrics("teslo")

	// --- Middleware ---
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())
	app.Use(metrics.Handler())

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// --- API Routes ---
	api := app.Group("/api")
	auth := middleware.AuthRequired(deps.AuthService, logger)

	handlers.NewAuthHandler(deps.AuthService, logger).RegisterRoutes(api)
	handlers.NewProductHandler(deps.ProductService, logger).RegisterRoutes(api, auth)
	handlers.NewFileHandler(deps.FileService, logger).RegisterRoutes(api, auth)
	if !deps.Config.IsProduction() {
		handlers.NewSeedHandler(deps.SeedService, logger).RegisterRoutes(api)
	}

	return app
}

// errorHandler turns errors escaping the handlers (unknown routes, oversized
// bodies, recovered panics) into JSON responses.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}
