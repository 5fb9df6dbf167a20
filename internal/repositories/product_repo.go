package repositories

import (
	"teslo/internal/models"
)

// ProductRepository defines the interface for product data access.
// Products are always returned with their images in stored order.
type ProductRepository interface {
	GetAll(limit, offset int) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	// Create inserts the product together with its images.
	Create(product *models.Product) error
	// Update writes the product's own columns; images are not touched.
	Update(product *models.Product) error
	// ReplaceImages deletes every image of the product and inserts urls in order.
	ReplaceImages(productID string, urls []string) error
	// Delete removes the product and its images.
	Delete(id string) error
	DeleteAll() error
	// Transaction runs fn against a repository bound to a single transaction.
	// Every write made through tx is rolled back if fn returns an error.
	Transaction(fn func(tx ProductRepository) error) error
}
