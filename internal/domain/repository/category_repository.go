package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// ListActive retrieves active categories with their ProductCount
	// projection populated from non-deleted products.
	ListActive(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category entity to the storage.
	Create(ctx context.Context, category *entity.Category) error

	// CountProducts counts the non-deleted products in a category.
	CountProducts(ctx context.Context, id int64) (int64, error)

	// Delete removes a category. Callers must enforce restrict-on-delete
	// before calling; the foreign key backs it up at the storage level.
	Delete(ctx context.Context, id int64) error
}
