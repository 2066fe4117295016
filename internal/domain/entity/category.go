package entity

import "time"

// Category groups products. A category that still has products cannot be
// removed (restrict-on-delete).
type Category struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool

	// ProductCount is a computed projection (non-deleted products only),
	// populated by reads that ask for it. It is never persisted.
	ProductCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}
