package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order belongs to one user and owns one or more items. Deleting an order
// cascades to its items; items reference products with restrict-on-delete.
type Order struct {
	ID          int64
	OrderNumber string
	UserID      uuid.UUID
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount float64 // Always > 0; persisted as numeric(18,2).
	Notes       string
	Items       []*OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// OrderItem is a single product line within an order. UnitPrice is captured
// from the product at order time; TotalPrice = UnitPrice * Quantity.
type OrderItem struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int // At least 1.
	UnitPrice  float64
	TotalPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
