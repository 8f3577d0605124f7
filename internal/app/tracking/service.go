package tracking

import (
	"context"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type Service struct {
	orders interfaces.OrderRepository
}

var _ interfaces.TrackingService = (*Service)(nil)

func NewService(orders interfaces.OrderRepository) *Service {
	return &Service{orders: orders}
}

func (s *Service) GetOrderStatus(ctx context.Context, orderID string) (*interfaces.TrackingOrderResponse, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &interfaces.TrackingOrderResponse{
		OrderID:       order.ID,
		OrderCode:     order.Code,
		CurrentStatus: order.Status,
		UpdatedAt:     order.UpdatedAt,
	}, nil
}

// GetOrderHistory returns entries most recent first. An unknown order id
// yields an empty slice, not an error.
func (s *Service) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	return s.orders.History(ctx, orderID)
}
