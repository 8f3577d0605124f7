package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type discountRepository struct {
	store *Store
}

func NewDiscountRepository(store *Store) interfaces.DiscountRepository {
	return &discountRepository{store: store}
}

func (r *discountRepository) List(ctx context.Context) ([]domain.Discount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listAll(r.store.discounts, func(a, b domain.Discount) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (r *discountRepository) GetByID(ctx context.Context, id string) (*domain.Discount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.discounts, id)
}

func (r *discountRepository) Create(ctx context.Context, d *domain.Discount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d.ID = uuid.NewString()
	r.store.discounts[d.ID] = *d
	return nil
}

func (r *discountRepository) Update(ctx context.Context, d *domain.Discount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.discounts[d.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.discounts[d.ID] = *d
	return nil
}

func (r *discountRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.discounts, id)
}

func (r *discountRepository) Products(ctx context.Context, discountID string) ([]domain.DiscountProduct, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	links := make([]domain.DiscountProduct, 0)
	for _, dp := range r.store.discountProducts {
		if dp.DiscountID == discountID {
			links = append(links, dp)
		}
	}
	return links, nil
}

func (r *discountRepository) AddProduct(ctx context.Context, dp *domain.DiscountProduct) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	dp.ID = uuid.NewString()
	r.store.discountProducts[dp.ID] = *dp
	return nil
}

func (r *discountRepository) RemoveProduct(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.discountProducts, id)
}

type slideRepository struct {
	store *Store
}

func NewSlideRepository(store *Store) interfaces.SlideRepository {
	return &slideRepository{store: store}
}

func (r *slideRepository) List(ctx context.Context) ([]domain.Slide, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listAll(r.store.slides, func(a, b domain.Slide) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (r *slideRepository) GetByID(ctx context.Context, id string) (*domain.Slide, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getByID(r.store.slides, id)
}

func (r *slideRepository) Create(ctx context.Context, s *domain.Slide) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s.ID = uuid.NewString()
	r.store.slides[s.ID] = *s
	return nil
}

func (r *slideRepository) Update(ctx context.Context, s *domain.Slide) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.slides[s.ID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.slides[s.ID] = *s
	return nil
}

func (r *slideRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.slides, id)
}

func (r *slideRepository) Gallery(ctx context.Context, slideID string) ([]domain.SlideGallery, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := listAll(r.store.slideGalleries, func(a, b domain.SlideGallery) bool {
		return a.Position < b.Position
	})
	out := items[:0]
	for _, g := range items {
		if g.SlideID == slideID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *slideRepository) AddGalleryItem(ctx context.Context, item *domain.SlideGallery) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item.ID = uuid.NewString()
	r.store.slideGalleries[item.ID] = *item
	return nil
}

func (r *slideRepository) DeleteGalleryItem(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return deleteByID(r.store.slideGalleries, id)
}
