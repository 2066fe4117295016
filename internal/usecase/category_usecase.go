package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// --- Output DTOs ---

// CategoryDto is the read projection of a category with its live product count.
type CategoryDto struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	ProductCount int    `json:"productCount"`
}

// ToCategoryDto maps a category entity to its read projection.
func ToCategoryDto(category *entity.Category) *CategoryDto {
	if category == nil {
		return nil
	}

	return &CategoryDto{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		IsActive:     category.IsActive,
		ProductCount: category.ProductCount,
	}
}

// CategoryUsecase defines the interface for category business operations.
type CategoryUsecase interface {
	// List returns the active categories with their product counts.
	List(ctx context.Context) ([]*CategoryDto, error)

	// Create persists a new active category.
	Create(ctx context.Context, input *CreateCategoryInput) (*CategoryDto, error)

	// Delete removes a category, refusing while products still reference it.
	Delete(ctx context.Context, id int64) error
}
