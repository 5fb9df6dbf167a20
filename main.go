package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teslo/internal/app"
	"teslo/internal/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "teslo",
	Short:        "Teslo shop backend",
	Long:         "Teslo serves the product catalog, user accounts and product image uploads over HTTP.",
	SilenceUsage: true,
	// Running without a subcommand starts the server.
	RunE: serveCmd.RunE,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(eventsCmd)
}

// boot loads the configuration, builds the logger and wires the container.
func boot() (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	c, err := app.Build(cfg, logger)
	if err != nil {
		logger.Error("Failed to build application", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// shutdown closes c and flushes its logger.
func shutdown(c *app.Container) {
	if err := c.Close(); err != nil {
		c.Logger.Warn("Error during shutdown", zap.Error(err))
	}
	_ = c.Logger.Sync()
}
