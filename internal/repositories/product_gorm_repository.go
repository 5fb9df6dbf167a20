package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teslo/internal/apperrors"
	"teslo/internal/models"
)

// productColumns are the columns written by Update.
var productColumns = []string{
	"title", "description", "slug", "price", "stock", "gender", "type", "tags", "sizes", "updated_at",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.id ASC")
}

// GetAll retrieves one page of products ordered by creation time.
func (r *GORMProductRepository) GetAll(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Images", orderedImages).
		Order("created_at ASC").Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	return r.first("id", id)
}

// GetBySlug retrieves a single product by its slug from the database.
func (r *GORMProductRepository) GetBySlug(slug string) (*models.Product, error) {
	return r.first("slug", slug)
}

func (r *GORMProductRepository) first(column, value string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images", orderedImages).First(&product, column+" = ?", value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with %s %s %w", column, value, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by %s %s: %w", column, value, err)
	}
	return &product, nil
}

// Create creates a new product and its images in one statement group.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("product with slug %q %w", product.Slug, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates the product's own columns, including zero values.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(product).Omit(clause.Associations).Select(productColumns).Updates(product)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return fmt.Errorf("product with slug %q %w", product.Slug, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// ReplaceImages swaps the product's image rows for urls.
func (r *GORMProductRepository) ReplaceImages(productID string, urls []string) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return fmt.Errorf("failed to delete images of product %s: %w", productID, err)
	}
	if len(urls) == 0 {
		return nil
	}
	images := models.ImagesFromURLs(urls)
	for i := range images {
		images[i].ProductID = productID
	}
	if err := r.db.Create(&images).Error; err != nil {
		return fmt.Errorf("failed to insert images of product %s: %w", productID, err)
	}
	return nil
}

// Delete deletes a product and its images.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete images of product %s: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
}

// DeleteAll removes every product and image.
func (r *GORMProductRepository) DeleteAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete all product images: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete all products: %w", err)
		}
		return nil
	})
}

// Transaction runs fn inside a database transaction.
func (r *GORMProductRepository) Transaction(fn func(tx ProductRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMProductRepository(tx))
	})
}
