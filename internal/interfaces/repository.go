package interfaces

import (
	"context"
	"errors"

	"github.com/gdevgproject/perfume-shop/internal/domain"
)

// ErrNotFound is returned when an operation targets an id that does not exist.
var ErrNotFound = errors.New("not found")

// OrderRepository persists orders and their append-only status history.
type OrderRepository interface {
	// Create writes the order, its line items and the initial history entry
	// atomically.
	Create(ctx context.Context, order *domain.Order, initial *domain.OrderHistory) error
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// UpdateStatus sets the order's status, refreshes updated_at and appends
	// entry in one transaction, returning the updated order.
	UpdateStatus(ctx context.Context, id string, status domain.Status, entry *domain.OrderHistory) (*domain.Order, error)
	// History returns all entries for the order, most recent first.
	History(ctx context.Context, orderID string) ([]domain.OrderHistory, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error

	Gallery(ctx context.Context, productID string) ([]domain.PerfumeGallery, error)
	AddGalleryItem(ctx context.Context, item *domain.PerfumeGallery) error
	DeleteGalleryItem(ctx context.Context, id string) error
}

type BrandRepository interface {
	List(ctx context.Context) ([]domain.Brand, error)
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	Create(ctx context.Context, b *domain.Brand) error
	Update(ctx context.Context, b *domain.Brand) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

type AddressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	Create(ctx context.Context, a *domain.Address) error
	Update(ctx context.Context, a *domain.Address) error
	Delete(ctx context.Context, id string) error
}

type DiscountRepository interface {
	List(ctx context.Context) ([]domain.Discount, error)
	GetByID(ctx context.Context, id string) (*domain.Discount, error)
	Create(ctx context.Context, d *domain.Discount) error
	Update(ctx context.Context, d *domain.Discount) error
	Delete(ctx context.Context, id string) error

	Products(ctx context.Context, discountID string) ([]domain.DiscountProduct, error)
	AddProduct(ctx context.Context, dp *domain.DiscountProduct) error
	RemoveProduct(ctx context.Context, id string) error
}

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) error
}

type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.FavoriteProduct, error)
	Create(ctx context.Context, f *domain.FavoriteProduct) error
	Delete(ctx context.Context, id string) error
}

type SlideRepository interface {
	List(ctx context.Context) ([]domain.Slide, error)
	GetByID(ctx context.Context, id string) (*domain.Slide, error)
	Create(ctx context.Context, s *domain.Slide) error
	Update(ctx context.Context, s *domain.Slide) error
	Delete(ctx context.Context, id string) error

	Gallery(ctx context.Context, slideID string) ([]domain.SlideGallery, error)
	AddGalleryItem(ctx context.Context, item *domain.SlideGallery) error
	DeleteGalleryItem(ctx context.Context, id string) error
}
