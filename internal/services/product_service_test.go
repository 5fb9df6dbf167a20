package services_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teslo/internal/apperrors"
	"teslo/internal/models"
	"teslo/internal/repositories"
	"teslo/internal/services"
)

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event any) error {
	args := m.Called(event)
	return args.Error(0)
}

// failingImages makes every image replacement fail, inside transactions too.
type failingImages struct {
	repositories.ProductRepository
}

func (f failingImages) ReplaceImages(string, []string) error {
	return errors.New("insert into product_images: disk full")
}

func (f failingImages) Transaction(fn func(tx repositories.ProductRepository) error) error {
	return f.ProductRepository.Transaction(func(tx repositories.ProductRepository) error {
		return fn(failingImages{tx})
	})
}

func ptr[T any](v T) *T { return &v }

func newProductService(repo repositories.ProductRepository) *services.ProductService {
	return services.NewProductService(repo, nil, zap.NewNop())
}

func blueShirt() models.CreateProductRequest {
	return models.CreateProductRequest{
		Title:  "Blue Shirt",
		Price:  10,
		Stock:  5,
		Gender: "man",
		Images: []string{"a.png", "b.png"},
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Blue Shirt", "blue-shirt"},
		{"  Mens Chill Crew  ", "mens-chill-crew"},
		{"already-slugged", "already-slugged"},
		{"A B  C", "a-b--c"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := services.Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, services.Slugify(got))
		})
	}
}

func TestProductService_CreateAndFind(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())

	created, err := svc.CreateProduct(blueShirt())
	require.NoError(t, err)
	assert.Equal(t, "blue-shirt", created.Slug)
	assert.Equal(t, []string{"a.png", "b.png"}, created.ImageURLs())

	bySlug, err := svc.FindProduct("blue-shirt")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
	assert.Equal(t, []string{"a.png", "b.png"}, bySlug.ImageURLs())

	byID, err := svc.FindProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Shirt", byID.Title)
	assert.Equal(t, 10.0, byID.Price)
	assert.Equal(t, 5, byID.Stock)
	assert.Equal(t, "man", byID.Gender)
}

func TestProductService_CreateUsesGivenSlug(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())

	req := blueShirt()
	req.Slug = "Summer Blue"
	created, err := svc.CreateProduct(req)
	require.NoError(t, err)
	assert.Equal(t, "summer-blue", created.Slug)
}

func TestProductService_CreateBlankSlugFallsBackToTitle(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())

	req := blueShirt()
	req.Slug = "   "
	created, err := svc.CreateProduct(req)
	require.NoError(t, err)
	assert.Equal(t, "blue-shirt", created.Slug)
}

func TestProductService_CreateConflict(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())

	_, err := svc.CreateProduct(blueShirt())
	require.NoError(t, err)

	_, err = svc.CreateProduct(blueShirt())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestProductService_CreateBlankTitle(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())

	req := blueShirt()
	req.Title = "   "
	_, err := svc.CreateProduct(req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProductService_FindNotFound(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())

	_, err := svc.FindProduct(uuid.New().String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.FindProduct("no-such-slug")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductService_GetAllProducts(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())
	for _, title := range []string{"First One", "Second One", "Third One"} {
		req := blueShirt()
		req.Title = title
		_, err := svc.CreateProduct(req)
		require.NoError(t, err)
	}

	all, err := svc.GetAllProducts(models.Pagination{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first-one", all[0].Slug)

	page, err := svc.GetAllProducts(models.Pagination{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second-one", page[0].Slug)

	_, err = svc.GetAllProducts(models.Pagination{Limit: 101})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.GetAllProducts(models.Pagination{Offset: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProductService_UpdateReplacesImages(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())
	created, err := svc.CreateProduct(blueShirt())
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, models.UpdateProductRequest{
		Images: []string{"c.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.png"}, updated.ImageURLs())

	cleared, err := svc.UpdateProduct(created.ID, models.UpdateProductRequest{Images: []string{}})
	require.NoError(t, err)
	assert.Empty(t, cleared.ImageURLs())
}

func TestProductService_UpdateWithoutImagesKeepsThem(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())
	created, err := svc.CreateProduct(blueShirt())
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, models.UpdateProductRequest{
		Title: ptr("Navy Shirt"),
		Price: ptr(0.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Navy Shirt", updated.Title)
	assert.Equal(t, 0.0, updated.Price)
	assert.Equal(t, "blue-shirt", updated.Slug)
	assert.Equal(t, []string{"a.png", "b.png"}, updated.ImageURLs())
}

func TestProductService_UpdateNormalizesSlug(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())
	created, err := svc.CreateProduct(blueShirt())
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, models.UpdateProductRequest{Slug: ptr(" Deep Blue ")})
	require.NoError(t, err)
	assert.Equal(t, "deep-blue", updated.Slug)

	updated, err = svc.UpdateProduct(created.ID, models.UpdateProductRequest{
		Title: ptr("Sky Shirt"),
		Slug:  ptr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "sky-shirt", updated.Slug)
}

func TestProductService_UpdateErrors(t *testing.T) {
	svc := newProductService(repositories.NewMemoryProductRepository())

	_, err := svc.UpdateProduct("not-a-uuid", models.UpdateProductRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UpdateProduct(uuid.New().String(), models.UpdateProductRequest{Title: ptr("New title")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrTransaction)
}

func TestProductService_FailedImageReplacementRollsBack(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	created, err := newProductService(repo).CreateProduct(blueShirt())
	require.NoError(t, err)

	svc := newProductService(failingImages{repo})
	_, err = svc.UpdateProduct(created.ID, models.UpdateProductRequest{
		Title:  ptr("Changed Title"),
		Stock:  ptr(99),
		Images: []string{"c.png"},
	})
	require.ErrorIs(t, err, apperrors.ErrTransaction)

	after, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Shirt", after.Title)
	assert.Equal(t, 5, after.Stock)
	assert.Equal(t, []string{"a.png", "b.png"}, after.ImageURLs())
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	svc := newProductService(repo)
	created, err := svc.CreateProduct(blueShirt())
	require.NoError(t, err)

	msg, err := svc.DeleteProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, services.ProductRemovedMessage, msg)

	_, err = svc.FindProduct(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.DeleteProduct(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.DeleteProduct("nope")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProductService_PublishesEvents(t *testing.T) {
	publisher := new(MockPublisher)
	svc := services.NewProductService(repositories.NewMemoryProductRepository(), publisher, zap.NewNop())

	isEvent := func(kind string) any {
		return mock.MatchedBy(func(e models.ProductEvent) bool {
			return e.Type == kind && e.ProductID != "" && !e.OccurredAt.IsZero()
		})
	}
	publisher.On("Publish", isEvent(models.ProductCreated)).Return(nil).Once()
	publisher.On("Publish", isEvent(models.ProductUpdated)).Return(errors.New("broker down")).Once()
	publisher.On("Publish", isEvent(models.ProductDeleted)).Return(nil).Once()

	created, err := svc.CreateProduct(blueShirt())
	require.NoError(t, err)
	// A failed publish does not fail the write.
	_, err = svc.UpdateProduct(created.ID, models.UpdateProductRequest{Stock: ptr(1)})
	require.NoError(t, err)
	_, err = svc.DeleteProduct(created.ID)
	require.NoError(t, err)

	publisher.AssertExpectations(t)
}

func TestProductService_NoEventOnFailedWrite(t *testing.T) {
	publisher := new(MockPublisher)
	svc := services.NewProductService(repositories.NewMemoryProductRepository(), publisher, zap.NewNop())

	_, err := svc.DeleteProduct(uuid.New().String())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}
