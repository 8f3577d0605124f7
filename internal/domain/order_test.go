package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	items := []OrderItem{
		{ProductID: "perfume-1", Quantity: 2, Price: 100},
		{ProductID: "perfume-2", Quantity: 1, Price: 45.5},
	}

	t.Run("Success", func(t *testing.T) {
		order, err := NewOrder("user-1", items)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, order.Status)
		assert.Equal(t, 245.5, order.TotalAmount)
		assert.False(t, order.CreatedAt.IsZero())
		assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	})

	t.Run("Missing user", func(t *testing.T) {
		_, err := NewOrder("", items)
		assert.ErrorIs(t, err, ErrMissingUser)
	})

	t.Run("Empty items", func(t *testing.T) {
		_, err := NewOrder("user-1", nil)
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("Invalid item", func(t *testing.T) {
		_, err := NewOrder("user-1", []OrderItem{{ProductID: "perfume-1", Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidItem)

		_, err = NewOrder("user-1", []OrderItem{{Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidItem)
	})
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("teleported").Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("Pending").Valid())
}
