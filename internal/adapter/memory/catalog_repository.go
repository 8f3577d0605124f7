package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type productRepository struct {
	store *Store
}

func NewProductRepository(store *Store) interfaces.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listAll(r.store.products, func(a, b domain.Product) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.products, id)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p.ID = uuid.NewString()
	r.store.products[p.ID] = *p
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[p.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.products[p.ID] = *p
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.products, id)
}

func (r *productRepository) Gallery(ctx context.Context, productID string) ([]domain.PerfumeGallery, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.PerfumeGallery, 0)
	for _, g := range r.store.galleries {
		if g.ProductID == productID {
			items = append(items, g)
		}
	}
	return items, nil
}

func (r *productRepository) AddGalleryItem(ctx context.Context, item *domain.PerfumeGallery) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item.ID = uuid.NewString()
	r.store.galleries[item.ID] = *item
	return nil
}

func (r *productRepository) DeleteGalleryItem(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.galleries, id)
}

type brandRepository struct {
	store *Store
}

func NewBrandRepository(store *Store) interfaces.BrandRepository {
	return &brandRepository{store: store}
}

func (r *brandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listAll(r.store.brands, func(a, b domain.Brand) bool { return a.Name < b.Name }), nil
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.brands, id)
}

func (r *brandRepository) Create(ctx context.Context, b *domain.Brand) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b.ID = uuid.NewString()
	r.store.brands[b.ID] = *b
	return nil
}

func (r *brandRepository) Update(ctx context.Context, b *domain.Brand) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.brands[b.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.brands[b.ID] = *b
	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.brands, id)
}

type categoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) interfaces.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listAll(r.store.categories, func(a, b domain.Category) bool {
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.Name < b.Name
	}), nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.categories, id)
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c.ID = uuid.NewString()
	r.store.categories[c.ID] = *c
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[c.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.categories[c.ID] = *c
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.categories, id)
}
