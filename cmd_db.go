package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teslo/internal/app"
)

var errSeedInProduction = errors.New("seed is disabled when APP_ENV is production")

// teslo migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot()
		if err != nil {
			return err
		}
		defer shutdown(c)

		if err := c.Migrate(); err != nil {
			return err
		}
		c.Logger.Info("Migrations applied", zap.String("driver", c.Config.DatabaseDriver))
		return nil
	},
}

// teslo seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Delete every product and load the fixture products",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot()
		if err != nil {
			return err
		}
		defer shutdown(c)
		return runSeed(c)
	},
}

func runSeed(c *app.Container) error {
	if c.Config.IsProduction() {
		return errSeedInProduction
	}
	if err := c.Migrate(); err != nil {
		return err
	}
	msg, err := c.SeedService.RunSeed()
	if err != nil {
		return err
	}
	c.Logger.Info(msg)
	return nil
}
