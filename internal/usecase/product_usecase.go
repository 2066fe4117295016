package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a catalog product.
// The owner is never part of the payload; it comes from the caller identity.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,max=500"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
}

// UpdateProductInput defines the data for a full product update. The target
// product ID comes from the URL, not the payload.
type UpdateProductInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,max=500"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
}

// ListProductsInput narrows and pages the catalog listing.
type ListProductsInput struct {
	CategoryID *int64
	SearchTerm string
	Page       int
	PageSize   int
}

// --- Output DTOs ---

// ProductDto is the read projection of a product, flattening the category
// name and the owner's display name into the payload.
type ProductDto struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	ImageURL     string    `json:"imageUrl"`
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToProductDto maps a product entity to its read projection. The category
// name and user name fill in only when the read eagerly loaded them.
func ToProductDto(product *entity.Product) *ProductDto {
	if product == nil {
		return nil
	}

	dto := &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		CategoryID:  product.CategoryID,
		UserID:      product.UserID.String(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.Category != nil {
		dto.CategoryName = product.Category.Name
	}
	if product.User != nil {
		dto.UserName = product.User.DisplayName()
	}

	return dto
}

// ProductUsecase defines the interface for catalog business operations.
type ProductUsecase interface {
	// Create persists a new product owned by the authenticated caller and
	// returns the freshly re-read projection, associations included.
	Create(ctx context.Context, input *CreateProductInput) (*ProductDto, error)

	// GetByID returns a single non-deleted product projection.
	GetByID(ctx context.Context, id int64) (*ProductDto, error)

	// List returns the non-deleted product projections matching the filter.
	List(ctx context.Context, input *ListProductsInput) ([]*ProductDto, error)

	// Update fully replaces a product's editable fields.
	Update(ctx context.Context, id int64, input *UpdateProductInput) (*ProductDto, error)

	// Delete soft-deletes a product.
	Delete(ctx context.Context, id int64) error
}
