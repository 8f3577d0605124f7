package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) interfaces.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listAll(r.store.users, func(a, b domain.User) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.users, id)
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u.ID = uuid.NewString()
	r.store.users[u.ID] = *u
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[u.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.users[u.ID] = *u
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.users, id)
}

type addressRepository struct {
	store *Store
}

func NewAddressRepository(store *Store) interfaces.AddressRepository {
	return &addressRepository{store: store}
}

func (r *addressRepository) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	addresses := make([]domain.Address, 0)
	for _, a := range r.store.addresses {
		if a.UserID == userID {
			addresses = append(addresses, a)
		}
	}
	return addresses, nil
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.addresses, id)
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a.ID = uuid.NewString()
	r.store.addresses[a.ID] = *a
	return nil
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.addresses[a.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.addresses[a.ID] = *a
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.addresses, id)
}

type favoriteRepository struct {
	store *Store
}

func NewFavoriteRepository(store *Store) interfaces.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteProduct, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	favorites := make([]domain.FavoriteProduct, 0)
	for _, f := range r.store.favorites {
		if f.UserID == userID {
			favorites = append(favorites, f)
		}
	}
	return favorites, nil
}

func (r *favoriteRepository) Create(ctx context.Context, f *domain.FavoriteProduct) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	f.ID = uuid.NewString()
	r.store.favorites[f.ID] = *f
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.favorites, id)
}

type reviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) interfaces.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listAll(r.store.reviews, func(a, b domain.Review) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	reviews := make([]domain.Review, 0)
	for _, rv := range r.store.reviews {
		if rv.ProductID == productID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.reviews, id)
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rv.ID = uuid.NewString()
	r.store.reviews[rv.ID] = *rv
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.reviews[rv.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.reviews[rv.ID] = *rv
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.reviews, id)
}
