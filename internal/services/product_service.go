package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teslo/internal/apperrors"
	"teslo/internal/models"
	"teslo/internal/repositories"
	"teslo/internal/validation"
)

// Paging defaults for GetAllProducts.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ProductRemovedMessage is returned after a successful delete.
const ProductRemovedMessage = "Product was successfully removed"

// ErrCreateProduct hides store details of a failed create from callers.
var ErrCreateProduct = errors.New("could not create product")

// EventPublisher delivers product events to a message broker.
type EventPublisher interface {
	Publish(event any) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateProduct stores a new product together with its images.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, validation.Invalid("slug", "cannot be derived from an empty title")
	}

	product := &models.Product{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Slug:        slug,
		Price:       req.Price,
		Stock:       req.Stock,
		Gender:      req.Gender,
		Type:        req.Type,
		Tags:        models.StringList(req.Tags).Clone(),
		Sizes:       models.StringList(req.Sizes).Clone(),
		Images:      models.ImagesFromURLs(req.Images),
	}

	if err := s.repo.Create(product); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Failed to create product", zap.String("slug", slug), zap.Error(err))
		return nil, ErrCreateProduct
	}

	s.logger.Info("Product created", zap.String("product_id", product.ID), zap.String("slug", product.Slug))
	s.publish(models.ProductCreated, product)
	return product, nil
}

// GetAllProducts returns one page of products. Zero limit or offset mean defaults.
func (s *ProductService) GetAllProducts(p models.Pagination) ([]models.Product, error) {
	limit, offset := p.Limit, p.Offset
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return nil, validation.Invalid("limit", fmt.Sprintf("must be between 1 and %d", MaxLimit))
	}
	if offset < 0 {
		return nil, validation.Invalid("offset", "must be 0 or greater")
	}
	return s.repo.GetAll(limit, offset)
}

// FindProduct looks a product up by ID when term is a UUID, then by slug.
func (s *ProductService) FindProduct(term string) (*models.Product, error) {
	return findProduct(s.repo, term)
}

func findProduct(repo repositories.ProductRepository, term string) (*models.Product, error) {
	if _, err := uuid.Parse(term); err == nil {
		product, err := repo.GetByID(term)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	product, err := repo.GetBySlug(Slugify(term))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("product with term %q %w", term, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies the present fields of req to the product. When
// req.Images is non-nil the whole image set is replaced. Everything happens in
// one transaction; on any failure nothing is written.
func (s *ProductService) UpdateProduct(id string, req models.UpdateProductRequest) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, validation.Invalid("id", "must be a valid UUID")
	}

	err := s.repo.Transaction(func(tx repositories.ProductRepository) error {
		product, err := tx.GetByID(id)
		if err != nil {
			return err
		}

		applyUpdate(product, req)
		if product.Slug == "" {
			return validation.Invalid("slug", "cannot be empty")
		}

		if err := tx.Update(product); err != nil {
			return err
		}
		if req.Images != nil {
			if err := tx.ReplaceImages(product.ID, req.Images); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.logger.Error("Product update rolled back", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrTransaction, err)
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", zap.String("product_id", id), zap.Bool("images_replaced", req.Images != nil))
	s.publish(models.ProductUpdated, product)
	return product, nil
}

func applyUpdate(p *models.Product, req models.UpdateProductRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if p.Slug = Slugify(p.Slug); p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Tags != nil {
		p.Tags = models.StringList(req.Tags).Clone()
	}
	if req.Sizes != nil {
		p.Sizes = models.StringList(req.Sizes).Clone()
	}
}

// DeleteProduct removes a product and its images.
func (s *ProductService) DeleteProduct(id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", validation.Invalid("id", "must be a valid UUID")
	}
	if err := s.repo.Delete(id); err != nil {
		return "", err
	}

	s.logger.Info("Product deleted", zap.String("product_id", id))
	s.publish(models.ProductDeleted, &models.Product{ID: id})
	return ProductRemovedMessage, nil
}

// DeleteAllProducts removes every product. Only the seed uses it.
func (s *ProductService) DeleteAllProducts() error {
	if err := s.repo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to delete all products: %w", err)
	}
	return nil
}

func (s *ProductService) publish(eventType string, p *models.Product) {
	if s.publisher == nil {
		return
	}
	event := models.ProductEvent{
		Type:       eventType,
		ProductID:  p.ID,
		Slug:       p.Slug,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(event); err != nil {
		s.logger.Warn("Failed to publish product event",
			zap.String("type", eventType),
			zap.String("product_id", p.ID),
			zap.Error(err),
		)
	}
}
