package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teslo/internal/app"
)

// teslo serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot()
		if err != nil {
			return err
		}
		defer shutdown(c)

		if err := c.Migrate(); err != nil {
			return err
		}
		return serve(c)
	},
}

func serve(c *app.Container) error {
	logger := c.Logger
	server := app.New(c)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", c.Config.AppPort), zap.String("env", c.Config.AppEnv))
		listenErr <- server.Listen(c.Config.AppPort)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	select {
	case err := <-listenErr:
		logger.Error("Server failed to start", zap.Error(err))
		return err
	case <-quit:
	}

	logger.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logger.Error("Error during Fiber shutdown", zap.Error(err))
		return err
	}
	logger.Info("Server gracefully stopped")
	return nil
}
