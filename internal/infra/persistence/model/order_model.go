package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Items cascade with the order.
type OrderModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderNumber string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderDate   time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	TotalAmount float64   `gorm:"type:numeric(18,2);not null"`
	Notes       string    `gorm:"type:varchar(500)"`
	AuditFields

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Products referenced by an
// item cannot be physically removed (restrict), only soft-deleted.
type OrderItemModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	OrderID    int64   `gorm:"not null;index"`
	ProductID  int64   `gorm:"not null;index"`
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"type:numeric(18,2);not null"`
	TotalPrice float64 `gorm:"type:numeric(18,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
