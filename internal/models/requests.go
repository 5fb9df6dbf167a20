package models

import "time"

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Slug        string   `json:"slug" validate:"omitempty,max=255"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Gender      string   `json:"gender" validate:"required,oneof=man woman kid unisex"`
	Type        string   `json:"type" validate:"omitempty,max=64"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
	Sizes       []string `json:"sizes" validate:"omitempty,dive,oneof=XS S M L XL XXL XXXL"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
}

// UpdateProductRequest is the body of PATCH /products/:id. Nil fields are left
// untouched. A non-nil Images (even empty) replaces the whole image set.
type UpdateProductRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Slug        *string  `json:"slug" validate:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=man woman kid unisex"`
	Type        *string  `json:"type" validate:"omitempty,max=64"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
	Sizes       []string `json:"sizes" validate:"omitempty,dive,oneof=XS S M L XL XXL XXXL"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
}

// Pagination holds the list query parameters. Zero values mean defaults.
type Pagination struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// ProductResponse is a product with its images flattened to URLs.
type ProductResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Gender      string   `json:"gender"`
	Type        string   `json:"type,omitempty"`
	Tags        []string `json:"tags"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
}

// NewProductResponse flattens p for the wire.
func NewProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		Price:       p.Price,
		Stock:       p.Stock,
		Gender:      p.Gender,
		Type:        p.Type,
		Tags:        nonNil(p.Tags),
		Sizes:       nonNil(p.Sizes),
		Images:      p.ImageURLs(),
	}
}

func nonNil(l StringList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=50,maxbytes=72,strongpassword"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50,maxbytes=72"`
}

// AuthResponse is returned by register and login. ID and Name are only set on register.
type AuthResponse struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// FileUploadResponse is returned after a product image upload.
type FileUploadResponse struct {
	Reference string `json:"reference"`
	SecureURL string `json:"secure_url"`
}

// Product event types published after successful writes.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// ProductEvent is published to the message broker after a product write commits.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	Slug       string    `json:"slug,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
