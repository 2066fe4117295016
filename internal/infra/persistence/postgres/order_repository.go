package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves a user's orders with items, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// Create persists a new order together with its items. GORM inserts the items
// through the association, so an order never exists without its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("order references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the order entity with the generated IDs and timestamps
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	order.CreatedBy = orderM.CreatedBy
	order.UpdatedBy = orderM.UpdatedBy
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
		order.Items[i].CreatedAt = itemM.CreatedAt
		order.Items[i].UpdatedAt = itemM.UpdatedAt
	}

	return nil
}

// toOrderDomain maps the GORM persistence model to the pure domain entity.
func toOrderDomain(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	order := &entity.Order{
		ID:          m.ID,
		OrderNumber: m.OrderNumber,
		UserID:      m.UserID,
		OrderDate:   m.OrderDate,
		Status:      entity.OrderStatus(m.Status),
		TotalAmount: m.TotalAmount,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
	}

	order.Items = make([]*entity.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		order.Items = append(order.Items, toOrderItemDomain(&m.Items[i]))
	}

	return order
}

func toOrderItemDomain(m *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:         m.ID,
		OrderID:    m.OrderID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// fromOrderDomain maps the pure domain entity to the GORM persistence model.
func fromOrderDomain(e *entity.Order) *model.OrderModel {
	if e == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:          e.ID,
		OrderNumber: e.OrderNumber,
		UserID:      e.UserID,
		OrderDate:   e.OrderDate,
		Status:      string(e.Status),
		TotalAmount: e.TotalAmount,
		Notes:       e.Notes,
		AuditFields: model.AuditFields{
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
			CreatedBy: e.CreatedBy,
			UpdatedBy: e.UpdatedBy,
		},
	}

	orderM.Items = make([]model.OrderItemModel, 0, len(e.Items))
	for _, item := range e.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return orderM
}
