package domain

import (
	"errors"
	"time"
)

// Order represents a customer's purchase request.
type Order struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is a (product, quantity) pairing within an order. Price is the
// unit price snapshot taken at order creation; it is not recomputed when the
// product's price changes later.
type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// NewOrder builds a pending order for the given user and items.
func NewOrder(userID string, items []OrderItem) (*Order, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, ErrInvalidItem
		}
	}

	now := time.Now().UTC()
	order := &Order{
		UserID:    userID,
		Items:     items,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	order.CalculateTotal()
	return order, nil
}

// CalculateTotal derives the order total from its line items.
func (o *Order) CalculateTotal() {
	total := 0.0
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	o.TotalAmount = total
}

var (
	ErrMissingUser = errors.New("order must reference a user")
	ErrEmptyOrder  = errors.New("order must have at least one item")
	ErrInvalidItem = errors.New("order item must reference a product with positive quantity")
	ErrBadStatus   = errors.New("unknown order status")
)
