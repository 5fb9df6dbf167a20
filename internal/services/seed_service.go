package services

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SeedExecutedMessage is returned by RunSeed on success.
const SeedExecutedMessage = "Seed executed"

// SeedService wipes the product store and reloads the fixture products.
type SeedService struct {
	products *ProductService
	logger   *zap.Logger
}

// NewSeedService creates a new SeedService.
func NewSeedService(products *ProductService, logger *zap.Logger) *SeedService {
	return &SeedService{products: products, logger: logger}
}

// RunSeed deletes every product and inserts the fixtures concurrently. It
// fails if any insert fails; inserts that already succeeded are kept.
func (s *SeedService) RunSeed() (string, error) {
	if err := s.products.DeleteAllProducts(); err != nil {
		return "", err
	}

	fixtures := SeedProducts()
	var g errgroup.Group
	for _, req := range fixtures {
		g.Go(func() error {
			if _, err := s.products.CreateProduct(req); err != nil {
				return fmt.Errorf("seed product %q: %w", req.Title, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Seed failed", zap.Error(err))
		return "", err
	}

	s.logger.Info("Seed executed", zap.Int("products", len(fixtures)))
	return SeedExecutedMessage, nil
}
