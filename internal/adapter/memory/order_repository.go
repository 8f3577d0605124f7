package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type orderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) interfaces.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order, initial *domain.OrderHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order.ID = uuid.NewString()
	for i := range order.Items {
		order.Items[i].ID = uuid.NewString()
		order.Items[i].OrderID = order.ID
	}

	initial.ID = uuid.NewString()
	initial.OrderID = order.ID

	r.store.orders[order.ID] = cloneOrder(*order)
	r.store.histories[order.ID] = []domain.OrderHistory{*initial}
	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := listAll(r.store.orders, func(a, b domain.Order) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})
	for i := range orders {
		orders[i] = cloneOrder(orders[i])
	}
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	cp := cloneOrder(o)
	return &cp, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]domain.Order, 0)
	for _, o := range r.store.orders {
		if o.UserID == userID {
			orders = append(orders, cloneOrder(o))
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, entry *domain.OrderHistory) (*domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}

	o.Status = status
	o.UpdatedAt = entry.UpdatedAt

	entry.ID = uuid.NewString()
	entry.OrderID = id

	// status write and history append happen under the same lock
	r.store.orders[id] = o
	r.store.histories[id] = append(r.store.histories[id], *entry)

	cp := cloneOrder(o)
	return &cp, nil
}

func (r *orderRepository) History(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]domain.OrderHistory, len(r.store.histories[orderID]))
	copy(entries, r.store.histories[orderID])
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
	})
	return entries, nil
}

func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
