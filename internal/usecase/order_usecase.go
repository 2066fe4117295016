package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// PlaceOrderItemInput is one requested product line in a new order.
type PlaceOrderItemInput struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

// PlaceOrderInput defines the data required to place an order. Prices are
// never accepted from the client; they are captured from the catalog.
type PlaceOrderInput struct {
	Notes string                `json:"notes" validate:"max=500"`
	Items []PlaceOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// --- Output DTOs ---

// OrderItemDto is the read projection of a single order line.
type OrderItemDto struct {
	ID         int64   `json:"id"`
	ProductID  int64   `json:"productId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// OrderDto is the read projection of an order with its lines.
type OrderDto struct {
	ID          int64          `json:"id"`
	OrderNumber string         `json:"orderNumber"`
	OrderDate   time.Time      `json:"orderDate"`
	Status      string         `json:"status"`
	TotalAmount float64        `json:"totalAmount"`
	Notes       string         `json:"notes"`
	Items       []OrderItemDto `json:"items"`
}

// ToOrderDto maps an order entity to its read projection.
func ToOrderDto(order *entity.Order) *OrderDto {
	if order == nil {
		return nil
	}

	dto := &OrderDto{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		OrderDate:   order.OrderDate,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		Notes:       order.Notes,
		Items:       make([]OrderItemDto, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		dto.Items = append(dto.Items, OrderItemDto{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return dto
}

// OrderUsecase defines the interface for order business operations.
// Every operation acts on behalf of the authenticated caller.
type OrderUsecase interface {
	// PlaceOrder atomically creates an order from the caller's requested
	// items, capturing unit prices and decrementing stock.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*OrderDto, error)

	// ListOrders returns the caller's orders, newest first.
	ListOrders(ctx context.Context) ([]*OrderDto, error)

	// GetOrder returns one of the caller's orders; other users' orders
	// stay hidden behind a not-found.
	GetOrder(ctx context.Context, id int64) (*OrderDto, error)
}
