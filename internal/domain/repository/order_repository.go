package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// An order and its items form one aggregate: creating an order inserts its
// items with it, and deleting one cascades to them.
type OrderRepository interface {
	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// ListByUser retrieves a user's orders with items, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error
}
