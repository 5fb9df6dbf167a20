package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"teslo/internal/apperrors"
	"teslo/internal/models"
)

// productTable is the state shared by a MemoryProductRepository and the
// transaction-bound copies it hands out.
type productTable struct {
	products    map[string]models.Product
	order       []string // insertion order of product IDs
	nextImageID uint
}

func (t *productTable) clone() *productTable {
	c := &productTable{
		products:    make(map[string]models.Product, len(t.products)),
		order:       append([]string(nil), t.order...),
		nextImageID: t.nextImageID,
	}
	for id, p := range t.products {
		c.products[id] = copyProduct(p)
	}
	return c
}

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Transactions take the write lock for their whole duration and restore a
// snapshot when they fail.
type MemoryProductRepository struct {
	mu    *sync.RWMutex
	table *productTable
	inTx  bool
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		mu:    &sync.RWMutex{},
		table: &productTable{products: make(map[string]models.Product), nextImageID: 1},
	}
}

func (r *MemoryProductRepository) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

func (r *MemoryProductRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func copyProduct(p models.Product) models.Product {
	p.Tags = p.Tags.Clone()
	p.Sizes = p.Sizes.Clone()
	p.Images = append([]models.ProductImage(nil), p.Images...)
	return p
}

// GetAll returns one page of products in insertion order.
func (r *MemoryProductRepository) GetAll(limit, offset int) ([]models.Product, error) {
	defer r.rlock()()

	productList := make([]models.Product, 0, limit)
	for i := offset; i < len(r.table.order) && len(productList) < limit; i++ {
		productList = append(productList, copyProduct(r.table.products[r.table.order[i]]))
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	defer r.rlock()()

	product, ok := r.table.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s %w", id, apperrors.ErrNotFound)
	}
	product = copyProduct(product)
	return &product, nil
}

// GetBySlug returns a product by its slug.
func (r *MemoryProductRepository) GetBySlug(slug string) (*models.Product, error) {
	defer r.rlock()()

	for _, p := range r.table.products {
		if p.Slug == slug {
			p = copyProduct(p)
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with slug %s %w", slug, apperrors.ErrNotFound)
}

func (r *MemoryProductRepository) slugTaken(slug, exceptID string) bool {
	for id, p := range r.table.products {
		if id != exceptID && p.Slug == slug {
			return true
		}
	}
	return false
}

func (r *MemoryProductRepository) newImages(productID string, urls []string) []models.ProductImage {
	images := models.ImagesFromURLs(urls)
	for i := range images {
		images[i].ID = r.table.nextImageID
		images[i].ProductID = productID
		r.table.nextImageID++
	}
	return images
}

// Create adds a new product and its images.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	defer r.lock()()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.table.products[product.ID]; ok {
		return fmt.Errorf("product with ID %s %w", product.ID, apperrors.ErrConflict)
	}
	if r.slugTaken(product.Slug, "") {
		return fmt.Errorf("product with slug %q %w", product.Slug, apperrors.ErrConflict)
	}

	now := time.Now()
	product.CreatedAt, product.UpdatedAt = now, now
	product.Images = r.newImages(product.ID, product.ImageURLs())

	r.table.products[product.ID] = copyProduct(*product)
	r.table.order = append(r.table.order, product.ID)
	return nil
}

// Update modifies an existing product, keeping its stored images.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	defer r.lock()()

	existing, ok := r.table.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s %w", product.ID, apperrors.ErrNotFound)
	}
	if r.slugTaken(product.Slug, product.ID) {
		return fmt.Errorf("product with slug %q %w", product.Slug, apperrors.ErrConflict)
	}

	updated := copyProduct(*product)
	updated.Images = existing.Images
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	r.table.products[product.ID] = updated
	return nil
}

// ReplaceImages swaps the product's images for urls.
func (r *MemoryProductRepository) ReplaceImages(productID string, urls []string) error {
	defer r.lock()()

	product, ok := r.table.products[productID]
	if !ok {
		return fmt.Errorf("product with ID %s %w", productID, apperrors.ErrNotFound)
	}
	product.Images = r.newImages(productID, urls)
	r.table.products[productID] = product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	defer r.lock()()

	if _, ok := r.table.products[id]; !ok {
		return fmt.Errorf("product with ID %s %w", id, apperrors.ErrNotFound)
	}
	delete(r.table.products, id)
	for i, pid := range r.table.order {
		if pid == id {
			r.table.order = append(r.table.order[:i], r.table.order[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteAll removes every product.
func (r *MemoryProductRepository) DeleteAll() error {
	defer r.lock()()

	r.table.products = make(map[string]models.Product)
	r.table.order = nil
	return nil
}

// Transaction runs fn with exclusive access and rolls back on error.
func (r *MemoryProductRepository) Transaction(fn func(tx ProductRepository) error) error {
	if r.inTx {
		return fn(r)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.table.clone()
	tx := &MemoryProductRepository{mu: r.mu, table: r.table, inTx: true}
	if err := fn(tx); err != nil {
		*r.table = *snapshot
		return err
	}
	return nil
}
