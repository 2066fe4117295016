package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is absent or soft-deleted.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows and pages catalog listings.
type ProductFilter struct {
	CategoryID *int64 // Optional category restriction.
	SearchTerm string // Optional case-insensitive substring match on the name.
	Page       int    // 1-based page index.
	PageSize   int
}

// ProductRepository defines the standard operations for product persistence.
// Every read excludes soft-deleted rows.
type ProductRepository interface {
	// FindByID retrieves a single non-deleted product with its Category and
	// owning User eagerly loaded.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List retrieves non-deleted products matching the filter, ordered by id
	// ascending so pagination is stable across requests.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// SoftDelete marks a product invisible to reads without removing the row.
	SoftDelete(ctx context.Context, id int64) error
}
