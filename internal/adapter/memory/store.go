// Package memory implements the repository interfaces on shared maps. It
// backs tests and the demo mode; a single RWMutex guards every collection so
// multi-write operations stay atomic.
package memory

import (
	"sort"
	"sync"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type Store struct {
	mu sync.RWMutex

	orders    map[string]domain.Order
	histories map[string][]domain.OrderHistory

	products  map[string]domain.Product
	galleries map[string]domain.PerfumeGallery
	brands    map[string]domain.Brand
	categories map[string]domain.Category

	users     map[string]domain.User
	addresses map[string]domain.Address
	favorites map[string]domain.FavoriteProduct
	reviews   map[string]domain.Review

	discounts        map[string]domain.Discount
	discountProducts map[string]domain.DiscountProduct
	slides           map[string]domain.Slide
	slideGalleries   map[string]domain.SlideGallery
}

func NewStore() *Store {
	return &Store{
		orders:           make(map[string]domain.Order),
		histories:        make(map[string][]domain.OrderHistory),
		products:         make(map[string]domain.Product),
		galleries:        make(map[string]domain.PerfumeGallery),
		brands:           make(map[string]domain.Brand),
		categories:        make(map[string]domain.Category),
		users:            make(map[string]domain.User),
		addresses:        make(map[string]domain.Address),
		favorites:        make(map[string]domain.FavoriteProduct),
		reviews:          make(map[string]domain.Review),
		discounts:        make(map[string]domain.Discount),
		discountProducts: make(map[string]domain.DiscountProduct),
		slides:           make(map[string]domain.Slide),
		slideGalleries:   make(map[string]domain.SlideGallery),
	}
}

// helpers shared by the typed repositories; callers hold the lock

func getByID[T any](m map[string]T, id string) (*T, error) {
	v, ok := m[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	cp := v
	return &cp, nil
}

func listAll[T any](m map[string]T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	if less != nil {
		sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func deleteByID[T any](m map[string]T, id string) error {
	if _, ok := m[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(m, id)
	return nil
}
