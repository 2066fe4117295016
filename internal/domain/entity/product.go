package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry owned by exactly one user and belonging to
// exactly one category. Prices carry two decimal digits of precision.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64 // Always > 0; persisted as numeric(18,2).
	Stock       int     // Never negative.
	ImageURL    string
	CategoryID  int64
	UserID      uuid.UUID // The owner/seller. Assigned from the caller identity, never from payloads.

	// Joined projections, populated only by reads that eagerly load them.
	Category *Category
	User     *User

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
	IsDeleted bool // Soft delete: hidden from all catalog reads, row retained.
}
