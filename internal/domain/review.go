package domain

import "time"

// Review is a customer's rating of a product bought in a given order.
type Review struct {
	ID        string    `json:"id"`
	Star      int       `json:"star"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
