package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/gdevgproject/perfume-shop/internal/domain"
)

// ErrInvalidInput is returned when a command fails boundary validation.
var ErrInvalidInput = errors.New("invalid input")

// Commands accepted by the order service.
type CreateOrderCommand struct {
	UserID string
	Items  []CreateOrderItemCommand
}

type CreateOrderItemCommand struct {
	ProductID string
	Quantity  int
}

// ChangeStatusCommand targets any known status from any current status; the
// store places no forward-only constraint on transitions. An empty Actor
// resolves to the admin actor.
type ChangeStatusCommand struct {
	OrderID string
	Status  string
	Actor   string
}

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (*domain.Order, error)
}

type TrackingService interface {
	GetOrderStatus(ctx context.Context, orderID string) (*TrackingOrderResponse, error)
	GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error)
}

type TrackingOrderResponse struct {
	OrderID       string
	OrderCode     string
	CurrentStatus domain.Status
	UpdatedAt     time.Time
}

// Partial updates. Nil fields are left untouched; merging happens in the
// services, not in the repositories.

type ProductUpdate struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	Price         *float64              `json:"price"`
	ImportPrice   *float64              `json:"import_price"`
	ListedPrice   *float64              `json:"listed_price"`
	CategoryID    *string               `json:"category_id"`
	BrandID       *string               `json:"brand_id"`
	Gender        *domain.Gender        `json:"gender"`
	Ingredients   []string              `json:"ingredients"`
	Origin        *string               `json:"origin"`
	Volumes       []int                 `json:"volumes"`
	Stock         *int                  `json:"stock"`
	Concentration *string               `json:"concentration"`
	TopNotes      []string              `json:"top_notes"`
	MiddleNotes   []string              `json:"middle_notes"`
	BaseNotes     []string              `json:"base_notes"`
	Longevity     *string               `json:"longevity"`
	Sillage       *string               `json:"sillage"`
	Status        *domain.ProductStatus `json:"status"`
	Views         *int                  `json:"views"`
	IsHot         *bool                 `json:"is_hot"`
}

type BrandUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
}

type CategoryUpdate struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parent_id"`
}

type UserUpdate struct {
	Name             *string            `json:"name"`
	Email            *string            `json:"email"`
	Phone            *string            `json:"phone"`
	Role             *domain.Role       `json:"role"`
	Status           *domain.UserStatus `json:"status"`
	DefaultAddressID *string            `json:"default_address_id"`
	Birthday         *time.Time         `json:"birthday"`
	Gender           *domain.Gender     `json:"gender"`
}

type AddressUpdate struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	ZipCode *string `json:"zip_code"`
}

type DiscountUpdate struct {
	Code         *string  `json:"code"`
	Percent      *float64 `json:"percent"`
	Permanent    *bool    `json:"permanent"`
	MinimumSpend *float64 `json:"minimum_spend"`
	MaximumSpend *float64 `json:"maximum_spend"`
	Limit        *int     `json:"limit"`
}

type ReviewUpdate struct {
	Star    *int    `json:"star"`
	Content *string `json:"content"`
}

type SlideUpdate struct {
	Name     *string `json:"name"`
	Arrow    *bool   `json:"arrow"`
	Dots     *bool   `json:"dots"`
	AutoPlay *bool   `json:"auto_play"`
	Fade     *bool   `json:"fade"`
	Speed    *int    `json:"speed"`
	Active   *bool   `json:"active"`
}
