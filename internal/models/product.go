package models

import "time"

// Genders accepted for a product.
var Genders = []string{"man", "woman", "kid", "unisex"}

// Sizes accepted in a product's size list.
var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// Product represents a product in the store.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string         `json:"title" gorm:"type:text;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Slug        string         `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Price       float64        `json:"price" gorm:"not null;default:0"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Gender      string         `json:"gender" gorm:"type:varchar(16);not null"`
	Type        string         `json:"type" gorm:"type:varchar(64)"`
	Tags        StringList     `json:"tags" gorm:"type:text"`
	Sizes       StringList     `json:"sizes" gorm:"type:text"`
	Images      []ProductImage `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProductImage is an image URL owned by exactly one product. It only changes
// through the product's create, update and remove paths.
type ProductImage struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	URL       string `json:"url" gorm:"type:text;not null"`
	ProductID string `json:"-" gorm:"type:varchar(36);index;not null"`
}

// ImageURLs returns the image URLs of p in stored order. The result is never nil.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// ImagesFromURLs builds unsaved image rows for the given URLs.
func ImagesFromURLs(urls []string) []ProductImage {
	images := make([]ProductImage, 0, len(urls))
	for _, u := range urls {
		images = append(images, ProductImage{URL: u})
	}
	return images
}
