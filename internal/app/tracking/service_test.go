package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdevgproject/perfume-shop/internal/adapter/memory"
	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

func setup(t *testing.T) (*Service, interfaces.OrderRepository) {
	t.Helper()
	store := memory.NewStore()
	orders := memory.NewOrderRepository(store)
	return NewService(orders), orders
}

func seedOrder(t *testing.T, orders interfaces.OrderRepository) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder("user-1", []domain.OrderItem{
		{ProductID: "perfume-1", Quantity: 1, Price: 99},
	})
	require.NoError(t, err)
	order.Code = "ORDER-test"

	note := "Order created"
	require.NoError(t, orders.Create(context.Background(), order, &domain.OrderHistory{
		Status:    order.Status,
		UpdatedBy: domain.ActorSystem,
		UpdatedAt: order.CreatedAt,
		Note:      &note,
	}))
	return order
}

func TestGetOrderStatus(t *testing.T) {
	svc, orders := setup(t)
	order := seedOrder(t, orders)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.GetOrderStatus(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, resp.OrderID)
		assert.Equal(t, "ORDER-test", resp.OrderCode)
		assert.Equal(t, domain.StatusPending, resp.CurrentStatus)
	})

	t.Run("Unknown order", func(t *testing.T) {
		_, err := svc.GetOrderStatus(context.Background(), "missing")
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestGetOrderHistory(t *testing.T) {
	svc, orders := setup(t)
	order := seedOrder(t, orders)

	for _, status := range []domain.Status{domain.StatusProcessing, domain.StatusShipped} {
		entry := &domain.OrderHistory{
			Status:    status,
			UpdatedBy: domain.ActorAdmin,
			UpdatedAt: order.UpdatedAt.Add(time.Minute),
		}
		order.UpdatedAt = entry.UpdatedAt
		_, err := orders.UpdateStatus(context.Background(), order.ID, status, entry)
		require.NoError(t, err)
	}

	t.Run("Most recent first", func(t *testing.T) {
		history, err := svc.GetOrderHistory(context.Background(), order.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, domain.StatusShipped, history[0].Status)
		assert.Equal(t, domain.StatusProcessing, history[1].Status)
		assert.Equal(t, domain.StatusPending, history[2].Status)
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i-1].UpdatedAt.Before(history[i].UpdatedAt))
		}
	})

	t.Run("Unknown order yields empty history", func(t *testing.T) {
		history, err := svc.GetOrderHistory(context.Background(), "missing")
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
