package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcusvales/shoplane-backend/pkg/db/models"
)

// CategoryDTO is the wire representation of a category.
type CategoryDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductDTO is the wire representation of a product.
type ProductDTO struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       string       `json:"price"`
	ImageURL    *string      `json:"image_url"`
	Category    *CategoryDTO `json:"category,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// CreateCategoryRequest is the admin payload for a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,lowercase"`
}

// UpdateCategoryRequest carries partial updates for an existing category.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
	Slug *string `json:"slug" validate:"omitempty,lowercase"`
}

// CreateProductRequest is the admin payload for a new product.
type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       string  `json:"price" validate:"required"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
}

// UpdateProductRequest carries partial updates for an existing product.
type UpdateProductRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

func toCategoryDTO(category *models.Category) *CategoryDTO {
	if category == nil {
		return nil
	}
	return &CategoryDTO{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

// ProductDTOFromModel maps a persisted product onto its wire representation.
func ProductDTOFromModel(product *models.Product) *ProductDTO {
	return toProductDTO(product)
}

func toProductDTO(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	return &ProductDTO{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		ImageURL:    product.ImageURL,
		Category:    toCategoryDTO(product.Category),
		CreatedAt:   product.CreatedAt,
	}
}

func toProductDTOs(products []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, *toProductDTO(&products[i]))
	}
	return dtos
}
