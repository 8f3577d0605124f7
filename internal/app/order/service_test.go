package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/adapter/memory"
	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type recordingPublisher struct {
	messages []interfaces.StatusUpdateMessage
	fail     bool
}

func (p *recordingPublisher) PublishStatusUpdate(ctx context.Context, msg interfaces.StatusUpdateMessage) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, msg)
	return nil
}

func setup(t *testing.T) (*Service, interfaces.OrderRepository, *recordingPublisher, string) {
	t.Helper()

	store := memory.NewStore()
	orders := memory.NewOrderRepository(store)
	products := memory.NewProductRepository(store)
	publisher := &recordingPublisher{}
	svc := NewService(orders, products, publisher, logger.New("test", "error"))

	p := &domain.Product{Name: "Bleu de Chanel", Price: 145, Stock: 10}
	require.NoError(t, products.Create(context.Background(), p))

	return svc, orders, publisher, p.ID
}

func createOrder(t *testing.T, svc *Service, productID string) *domain.Order {
	t.Helper()
	order, err := svc.CreateOrder(context.Background(), interfaces.CreateOrderCommand{
		UserID: "user-1",
		Items:  []interfaces.CreateOrderItemCommand{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	svc, orders, _, productID := setup(t)

	t.Run("Success", func(t *testing.T) {
		order := createOrder(t, svc, productID)

		assert.Equal(t, domain.StatusPending, order.Status)
		assert.True(t, strings.HasPrefix(order.Code, "ORDER-"))
		assert.Equal(t, 290.0, order.TotalAmount)
		assert.False(t, order.CreatedAt.IsZero())
		require.Len(t, order.Items, 1)
		assert.Equal(t, 145.0, order.Items[0].Price)

		history, err := orders.History(context.Background(), order.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, domain.StatusPending, history[0].Status)
		assert.Equal(t, domain.ActorSystem, history[0].UpdatedBy)
		require.NotNil(t, history[0].Note)
		assert.Equal(t, "Order created", *history[0].Note)
	})

	t.Run("Fail on missing user", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), interfaces.CreateOrderCommand{
			Items: []interfaces.CreateOrderItemCommand{{ProductID: productID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrMissingUser)
	})

	t.Run("Fail on empty items", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), interfaces.CreateOrderCommand{UserID: "user-1"})
		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	})

	t.Run("Fail on zero quantity", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), interfaces.CreateOrderCommand{
			UserID: "user-1",
			Items:  []interfaces.CreateOrderItemCommand{{ProductID: productID, Quantity: 0}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidItem)
	})

	t.Run("Fail on unknown product", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), interfaces.CreateOrderCommand{
			UserID: "user-1",
			Items:  []interfaces.CreateOrderItemCommand{{ProductID: "missing", Quantity: 1}},
		})
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestChangeStatus(t *testing.T) {
	svc, orders, publisher, productID := setup(t)
	order := createOrder(t, svc, productID)

	t.Run("Appends history with actor and note", func(t *testing.T) {
		updated, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: order.ID,
			Status:  "processing",
			Actor:   "warehouse",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, updated.Status)

		history, err := orders.History(context.Background(), order.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, domain.StatusProcessing, history[0].Status)
		assert.Equal(t, "warehouse", history[0].UpdatedBy)
		require.NotNil(t, history[0].Note)
		assert.Equal(t, "Order status change to processing", *history[0].Note)
	})

	t.Run("Default actor is admin", func(t *testing.T) {
		_, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: order.ID,
			Status:  "shipped",
		})
		require.NoError(t, err)

		history, _ := orders.History(context.Background(), order.ID)
		assert.Equal(t, domain.ActorAdmin, history[0].UpdatedBy)
	})

	t.Run("Backward transition is allowed", func(t *testing.T) {
		updated, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: order.ID,
			Status:  "pending",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, updated.Status)
	})

	t.Run("History only grows", func(t *testing.T) {
		before, _ := orders.History(context.Background(), order.ID)
		_, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: order.ID,
			Status:  "cancelled",
		})
		require.NoError(t, err)

		after, _ := orders.History(context.Background(), order.ID)
		assert.Equal(t, len(before)+1, len(after))
	})

	t.Run("Unknown status is rejected without history entry", func(t *testing.T) {
		before, _ := orders.History(context.Background(), order.ID)
		_, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: order.ID,
			Status:  "teleported",
		})
		assert.ErrorIs(t, err, domain.ErrBadStatus)

		after, _ := orders.History(context.Background(), order.ID)
		assert.Len(t, after, len(before))
	})

	t.Run("Unknown order returns not found", func(t *testing.T) {
		_, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: "missing",
			Status:  "shipped",
		})
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})

	t.Run("Publishes status update", func(t *testing.T) {
		publisher.messages = nil
		_, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: order.ID,
			Status:  "delivered",
			Actor:   "courier",
		})
		require.NoError(t, err)

		require.Len(t, publisher.messages, 1)
		msg := publisher.messages[0]
		assert.Equal(t, order.ID, msg.OrderID)
		assert.Equal(t, order.Code, msg.OrderCode)
		assert.Equal(t, domain.StatusCancelled, msg.OldStatus)
		assert.Equal(t, domain.StatusDelivered, msg.NewStatus)
		assert.Equal(t, "courier", msg.ChangedBy)
	})

	t.Run("Publish failure does not fail the transition", func(t *testing.T) {
		publisher.fail = true
		defer func() { publisher.fail = false }()

		updated, err := svc.ChangeStatus(context.Background(), interfaces.ChangeStatusCommand{
			OrderID: order.ID,
			Status:  "processing",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, updated.Status)
	})
}

func TestListOrdersByUser(t *testing.T) {
	svc, _, _, productID := setup(t)
	createOrder(t, svc, productID)
	createOrder(t, svc, productID)

	mine, err := svc.ListOrdersByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := svc.ListOrdersByUser(context.Background(), "someone-else")
	require.NoError(t, err)
	assert.Empty(t, none)
}
