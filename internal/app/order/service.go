package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type Service struct {
	orders    interfaces.OrderRepository
	products  interfaces.ProductRepository
	publisher interfaces.MessagePublisher
	logger    logger.Logger
}

var _ interfaces.OrderService = (*Service)(nil)

func NewService(orders interfaces.OrderRepository, products interfaces.ProductRepository, publisher interfaces.MessagePublisher, logger logger.Logger) *Service {
	return &Service{
		orders:    orders,
		products:  products,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder snapshots current product prices into line items, derives the
// total, and persists the order together with its creation history entry.
func (s *Service) CreateOrder(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		if it.Quantity < 1 {
			return nil, domain.ErrInvalidItem
		}
		product, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s: %w", it.ProductID, err)
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  it.Quantity,
			Price:     product.Price,
		})
	}

	order, err := domain.NewOrder(cmd.UserID, items)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", "", nil, err)
		return nil, err
	}
	order.Code = "ORDER-" + uuid.NewString()

	note := "Order created"
	initial := &domain.OrderHistory{
		Status:    order.Status,
		UpdatedBy: domain.ActorSystem,
		UpdatedAt: order.CreatedAt,
		Note:      &note,
	}

	if err := s.orders.Create(ctx, order, initial); err != nil {
		s.logger.Error("order_create_failed", "Failed to create order", "", nil, err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug("order_created", "Order created", "", map[string]interface{}{
		"order_code":   order.Code,
		"total_amount": order.TotalAmount,
	})
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ChangeStatus sets the order to any known status. Transitions are not
// constrained to a forward progression; an authorized actor may move an order
// from any status to any other.
func (s *Service) ChangeStatus(ctx context.Context, cmd interfaces.ChangeStatusCommand) (*domain.Order, error) {
	status := domain.Status(cmd.Status)
	if !status.Valid() {
		return nil, domain.ErrBadStatus
	}

	actor := cmd.Actor
	if actor == "" {
		actor = domain.ActorAdmin
	}

	current, err := s.orders.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	oldStatus := current.Status

	note := fmt.Sprintf("Order status change to %s", status)
	entry := &domain.OrderHistory{
		Status:    status,
		UpdatedBy: actor,
		UpdatedAt: time.Now().UTC(),
		Note:      &note,
	}

	updated, err := s.orders.UpdateStatus(ctx, cmd.OrderID, status, entry)
	if err != nil {
		s.logger.Error("status_change_failed", "Failed to update order status", "", nil, err)
		return nil, err
	}

	msg := interfaces.StatusUpdateMessage{
		OrderID:   updated.ID,
		OrderCode: updated.Code,
		OldStatus: oldStatus,
		NewStatus: updated.Status,
		ChangedBy: actor,
		Note:      note,
		Timestamp: entry.UpdatedAt,
	}
	// the transition is already durable; a broker outage must not fail it
	if err := s.publisher.PublishStatusUpdate(ctx, msg); err != nil {
		s.logger.Error("status_publish_failed", "Failed to publish status update", "", map[string]interface{}{
			"order_code": updated.Code,
		}, err)
	}

	s.logger.Debug("status_changed", "Order status changed", "", map[string]interface{}{
		"order_code": updated.Code,
		"old_status": string(oldStatus),
		"new_status": string(updated.Status),
		"changed_by": actor,
	})
	return updated, nil
}
