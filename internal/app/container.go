package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"teslo/internal/config"
	"teslo/internal/database"
	"teslo/internal/repositories"
	"teslo/internal/services"
	"teslo/pkg/password"
	"teslo/pkg/rabbitmq"
	"teslo/pkg/storage"
	"teslo/pkg/token"
)

// Container holds the wired dependencies of the application.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	DB       *gorm.DB // nil with the memory driver
	Products repositories.ProductRepository
	Users    repositories.UserRepository
	Disk     storage.Disk
	Events   *rabbitmq.Client // nil when RABBITMQ_URL is empty

	AuthService    *services.AuthService
	ProductService *services.ProductService
	FileService    *services.FileService
	SeedService    *services.SeedService
}

// Build opens the store, storage and broker selected by cfg and wires the services.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.openStore(); err != nil {
		return nil, err
	}

	disk, err := newDisk(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Disk = disk

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, logger)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Events = client
		publisher = client
	}

	c.AuthService = services.NewAuthService(
		c.Users,
		password.NewHasher(cfg.BcryptCost),
		token.NewManager(cfg.JWTSecret, cfg.JWTTTL),
		logger,
	)
	c.ProductService = services.NewProductService(c.Products, publisher, logger)
	c.FileService = services.NewFileService(c.Disk, logger)
	c.SeedService = services.NewSeedService(c.ProductService, logger)
	return c, nil
}

func (c *Container) openStore() error {
	if c.Config.DatabaseDriver == "memory" {
		c.Logger.Warn("Using in-memory store, data is lost on exit")
		c.Products = repositories.NewMemoryProductRepository()
		c.Users = repositories.NewMemoryUserRepository()
		return nil
	}

	db, err := database.Open(c.Config.DatabaseDriver, c.Config.DatabaseDSN, c.Logger)
	if err != nil {
		return err
	}
	c.DB = db
	c.Products = repositories.NewGORMProductRepository(db)
	c.Users = repositories.NewGORMUserRepository(db)
	return nil
}

func newDisk(cfg *config.Config) (storage.Disk, error) {
	switch cfg.StorageDriver {
	case "s3":
		return storage.NewS3Disk(storage.S3Config{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Key:      cfg.S3Key,
			Secret:   cfg.S3Secret,
			Endpoint: cfg.S3Endpoint,
			BaseURL:  cfg.S3URL,
		})
	case "local":
		return storage.NewLocalDisk(cfg.StorageLocalRoot, cfg.StoragePublicURL)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// Migrate creates the schema. It is a no-op for the memory driver.
func (c *Container) Migrate() error {
	if c.DB == nil {
		return nil
	}
	return database.Migrate(c.DB)
}

// Close releases the broker connection and the database pool.
func (c *Container) Close() error {
	var errs []error
	if c.Events != nil {
		errs = append(errs, c.Events.Close())
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
