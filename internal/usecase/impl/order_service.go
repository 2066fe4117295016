package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates an order for the authenticated caller. Stock checks,
// stock decrements and the order insert share one explicit transaction: any
// failed line rolls back the whole order, leaving stock untouched.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.OrderDto, error) {
	identity := deliverycontext.GetIdentity(ctx)
	if identity == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("placing an order requires an authenticated caller")
	}

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder.WrapMessage("order has no items")
	}

	srv.log(ctx).Info("Placing order", slog.Any("userID", identity.UserID), slog.Int("items", len(input.Items)))

	tx, err := srv.txManager.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin order transaction")
	}

	order, err := srv.buildAndStoreOrder(ctx, tx.Repos(), identity.UserID, input)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			srv.log(ctx).Error("Order rollback failed", slog.Any("error", rbErr))
		}
		srv.log(ctx).Warn("Order placement failed", slog.Any("userID", identity.UserID), slog.Any("error", err))

		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit order transaction")
	}

	srv.log(ctx).Debug("Order placed", slog.Int64("orderID", order.ID), slog.String("orderNumber", order.OrderNumber))

	return usecase.ToOrderDto(order), nil
}

// buildAndStoreOrder runs inside the order transaction: it captures catalog
// prices, verifies and decrements stock line by line, then inserts the order
// with its items.
func (srv *orderService) buildAndStoreOrder(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	userID uuid.UUID,
	input *usecase.PlaceOrderInput,
) (*entity.Order, error) {
	productRepo := repoFactory.Products()

	items := make([]*entity.OrderItem, 0, len(input.Items))
	var totalAmount float64

	for _, line := range input.Items {
		product, err := productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WrapMessage(
					fmt.Sprintf("product %d not found", line.ProductID))
			}

			return nil, errors.Wrap(err, "failed to load product for order")
		}

		if product.Stock < line.Quantity {
			return nil, domainerrors.ErrInsufficientStock.WrapMessage(
				fmt.Sprintf("product %d has %d in stock, %d requested", product.ID, product.Stock, line.Quantity))
		}

		product.Stock -= line.Quantity
		if err := productRepo.Update(ctx, product); err != nil {
			return nil, errors.Wrap(err, "failed to decrement product stock")
		}

		items = append(items, &entity.OrderItem{
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: product.Price * float64(line.Quantity),
		})
		totalAmount += product.Price * float64(line.Quantity)
	}

	order := &entity.Order{
		OrderNumber: generateOrderNumber(),
		UserID:      userID,
		OrderDate:   time.Now().UTC(),
		Status:      entity.OrderStatusPending,
		TotalAmount: totalAmount,
		Notes:       input.Notes,
		Items:       items,
	}

	if err := repoFactory.Orders().Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*usecase.OrderDto, error) {
	identity := deliverycontext.GetIdentity(ctx)
	if identity == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("listing orders requires an authenticated caller")
	}

	orders, err := srv.orderRepo.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	dtos := make([]*usecase.OrderDto, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, usecase.ToOrderDto(order))
	}

	return dtos, nil
}

// GetOrder returns one of the caller's orders. Another user's order answers
// not-found rather than forbidden, so order IDs cannot be probed.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*usecase.OrderDto, error) {
	identity := deliverycontext.GetIdentity(ctx)
	if identity == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("reading an order requires an authenticated caller")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found")
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	if order.UserID != identity.UserID {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found")
	}

	return usecase.ToOrderDto(order), nil
}

// generateOrderNumber builds a human-scannable, unique order reference:
// a UTC timestamp plus a short random suffix.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]

	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}
