package merchandising

import (
	"context"
	"time"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// Service covers storefront merchandising: discount codes, their product
// bindings, and the carousel slides with their galleries.
type Service struct {
	discounts interfaces.DiscountRepository
	slides    interfaces.SlideRepository
	logger    logger.Logger
}

func NewService(discounts interfaces.DiscountRepository, slides interfaces.SlideRepository, logger logger.Logger) *Service {
	return &Service{
		discounts: discounts,
		slides:    slides,
		logger:    logger,
	}
}

// Discounts

func (s *Service) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	return s.discounts.List(ctx)
}

func (s *Service) GetDiscount(ctx context.Context, id string) (*domain.Discount, error) {
	return s.discounts.GetByID(ctx, id)
}

func (s *Service) CreateDiscount(ctx context.Context, d domain.Discount) (*domain.Discount, error) {
	if d.Code == "" || d.Percent <= 0 || d.Percent > 100 {
		return nil, interfaces.ErrInvalidInput
	}
	if d.MinimumSpend != nil && d.MaximumSpend != nil && *d.MinimumSpend > *d.MaximumSpend {
		return nil, interfaces.ErrInvalidInput
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := s.discounts.Create(ctx, &d); err != nil {
		s.logger.Error("discount_create_failed", "Failed to create discount", "", nil, err)
		return nil, err
	}
	return &d, nil
}

func (s *Service) UpdateDiscount(ctx context.Context, id string, upd interfaces.DiscountUpdate) (*domain.Discount, error) {
	d, err := s.discounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Code != nil {
		d.Code = *upd.Code
	}
	if upd.Percent != nil {
		d.Percent = *upd.Percent
	}
	if upd.Permanent != nil {
		d.Permanent = *upd.Permanent
	}
	if upd.MinimumSpend != nil {
		d.MinimumSpend = upd.MinimumSpend
	}
	if upd.MaximumSpend != nil {
		d.MaximumSpend = upd.MaximumSpend
	}
	if upd.Limit != nil {
		d.Limit = *upd.Limit
	}
	if d.Code == "" || d.Percent <= 0 || d.Percent > 100 {
		return nil, interfaces.ErrInvalidInput
	}
	if d.MinimumSpend != nil && d.MaximumSpend != nil && *d.MinimumSpend > *d.MaximumSpend {
		return nil, interfaces.ErrInvalidInput
	}
	d.UpdatedAt = time.Now().UTC()

	if err := s.discounts.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDiscount(ctx context.Context, id string) error {
	return s.discounts.Delete(ctx, id)
}

func (s *Service) DiscountProducts(ctx context.Context, discountID string) ([]domain.DiscountProduct, error) {
	return s.discounts.Products(ctx, discountID)
}

func (s *Service) AddDiscountProduct(ctx context.Context, dp domain.DiscountProduct) (*domain.DiscountProduct, error) {
	if dp.DiscountID == "" || dp.ProductID == "" {
		return nil, interfaces.ErrInvalidInput
	}
	// The discount must exist before products can be bound to it.
	if _, err := s.discounts.GetByID(ctx, dp.DiscountID); err != nil {
		return nil, err
	}
	if err := s.discounts.AddProduct(ctx, &dp); err != nil {
		return nil, err
	}
	return &dp, nil
}

func (s *Service) RemoveDiscountProduct(ctx context.Context, id string) error {
	return s.discounts.RemoveProduct(ctx, id)
}

// Slides

func (s *Service) ListSlides(ctx context.Context) ([]domain.Slide, error) {
	return s.slides.List(ctx)
}

func (s *Service) GetSlide(ctx context.Context, id string) (*domain.Slide, error) {
	return s.slides.GetByID(ctx, id)
}

func (s *Service) CreateSlide(ctx context.Context, sl domain.Slide) (*domain.Slide, error) {
	if sl.Name == "" {
		return nil, interfaces.ErrInvalidInput
	}
	if sl.Speed <= 0 {
		sl.Speed = 500
	}
	now := time.Now().UTC()
	sl.CreatedAt = now
	sl.UpdatedAt = now
	if err := s.slides.Create(ctx, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

func (s *Service) UpdateSlide(ctx context.Context, id string, upd interfaces.SlideUpdate) (*domain.Slide, error) {
	sl, err := s.slides.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		sl.Name = *upd.Name
	}
	if upd.Arrow != nil {
		sl.Arrow = *upd.Arrow
	}
	if upd.Dots != nil {
		sl.Dots = *upd.Dots
	}
	if upd.AutoPlay != nil {
		sl.AutoPlay = *upd.AutoPlay
	}
	if upd.Fade != nil {
		sl.Fade = *upd.Fade
	}
	if upd.Speed != nil {
		sl.Speed = *upd.Speed
	}
	if upd.Active != nil {
		sl.Active = *upd.Active
	}
	if sl.Name == "" || sl.Speed <= 0 {
		return nil, interfaces.ErrInvalidInput
	}
	sl.UpdatedAt = time.Now().UTC()

	if err := s.slides.Update(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *Service) DeleteSlide(ctx context.Context, id string) error {
	return s.slides.Delete(ctx, id)
}

func (s *Service) SlideGallery(ctx context.Context, slideID string) ([]domain.SlideGallery, error) {
	return s.slides.Gallery(ctx, slideID)
}

func (s *Service) AddSlideGalleryItem(ctx context.Context, item domain.SlideGallery) (*domain.SlideGallery, error) {
	if item.SlideID == "" || item.Path == "" {
		return nil, interfaces.ErrInvalidInput
	}
	if item.Type == "" {
		item.Type = "image"
	}
	if _, err := s.slides.GetByID(ctx, item.SlideID); err != nil {
		return nil, err
	}
	if err := s.slides.AddGalleryItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) DeleteSlideGalleryItem(ctx context.Context, id string) error {
	return s.slides.DeleteGalleryItem(ctx, id)
}
