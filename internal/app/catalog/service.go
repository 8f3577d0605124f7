package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// Service covers the product catalog: products and their galleries, brands,
// and the category tree.
type Service struct {
	products   interfaces.ProductRepository
	brands     interfaces.BrandRepository
	categories interfaces.CategoryRepository
	logger     logger.Logger
}

func NewService(products interfaces.ProductRepository, brands interfaces.BrandRepository, categories interfaces.CategoryRepository, logger logger.Logger) *Service {
	return &Service{
		products:   products,
		brands:     brands,
		categories: categories,
		logger:     logger,
	}
}

// Products

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" || p.Price < 0 || p.Stock < 0 {
		return nil, interfaces.ErrInvalidInput
	}
	if p.Gender == "" {
		p.Gender = domain.GenderUnisex
	}
	if p.Status == "" {
		p.Status = domain.ProductActive
	}
	p.Code = "PERFUME-" + uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.products.Create(ctx, &p); err != nil {
		s.logger.Error("product_create_failed", "Failed to create product", "", nil, err)
		return nil, err
	}
	return &p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, upd interfaces.ProductUpdate) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.ImportPrice != nil {
		p.ImportPrice = *upd.ImportPrice
	}
	if upd.ListedPrice != nil {
		p.ListedPrice = *upd.ListedPrice
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if upd.BrandID != nil {
		p.BrandID = *upd.BrandID
	}
	if upd.Gender != nil {
		p.Gender = *upd.Gender
	}
	if upd.Ingredients != nil {
		p.Ingredients = upd.Ingredients
	}
	if upd.Origin != nil {
		p.Origin = *upd.Origin
	}
	if upd.Volumes != nil {
		p.Volumes = upd.Volumes
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Concentration != nil {
		p.Concentration = *upd.Concentration
	}
	if upd.TopNotes != nil {
		p.TopNotes = upd.TopNotes
	}
	if upd.MiddleNotes != nil {
		p.MiddleNotes = upd.MiddleNotes
	}
	if upd.BaseNotes != nil {
		p.BaseNotes = upd.BaseNotes
	}
	if upd.Longevity != nil {
		p.Longevity = *upd.Longevity
	}
	if upd.Sillage != nil {
		p.Sillage = *upd.Sillage
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Views != nil {
		p.Views = *upd.Views
	}
	if upd.IsHot != nil {
		p.IsHot = *upd.IsHot
	}
	if p.Name == "" || p.Price < 0 || p.Stock < 0 {
		return nil, interfaces.ErrInvalidInput
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *Service) ProductGallery(ctx context.Context, productID string) ([]domain.PerfumeGallery, error) {
	return s.products.Gallery(ctx, productID)
}

func (s *Service) AddProductGalleryItem(ctx context.Context, item domain.PerfumeGallery) (*domain.PerfumeGallery, error) {
	if item.ProductID == "" || item.Path == "" {
		return nil, interfaces.ErrInvalidInput
	}
	if item.Type == "" {
		item.Type = "image"
	}
	if err := s.products.AddGalleryItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) DeleteProductGalleryItem(ctx context.Context, id string) error {
	return s.products.DeleteGalleryItem(ctx, id)
}

// Brands

func (s *Service) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx)
}

func (s *Service) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	return s.brands.GetByID(ctx, id)
}

func (s *Service) CreateBrand(ctx context.Context, b domain.Brand) (*domain.Brand, error) {
	if b.Name == "" {
		return nil, interfaces.ErrInvalidInput
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.brands.Create(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Service) UpdateBrand(ctx context.Context, id string, upd interfaces.BrandUpdate) (*domain.Brand, error) {
	b, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		b.Name = *upd.Name
	}
	if upd.Description != nil {
		b.Description = *upd.Description
	}
	if upd.Logo != nil {
		b.Logo = *upd.Logo
	}
	if b.Name == "" {
		return nil, interfaces.ErrInvalidInput
	}
	b.UpdatedAt = time.Now().UTC()

	if err := s.brands.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBrand(ctx context.Context, id string) error {
	return s.brands.Delete(ctx, id)
}

// Categories

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// CreateCategory resolves the node's level from its parent at creation time.
func (s *Service) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if c.Name == "" {
		return nil, interfaces.ErrInvalidInput
	}
	level, err := s.resolveLevel(ctx, c.ParentID)
	if err != nil {
		return nil, err
	}
	c.Level = level
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.categories.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, upd interfaces.CategoryUpdate) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.ParentID != nil {
		if *upd.ParentID == "" {
			c.ParentID = nil
		} else {
			c.ParentID = upd.ParentID
		}
		level, err := s.resolveLevel(ctx, c.ParentID)
		if err != nil {
			return nil, err
		}
		c.Level = level
	}
	if c.Name == "" {
		return nil, interfaces.ErrInvalidInput
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	// Products referencing the category are left alone; there is no cascade.
	return s.categories.Delete(ctx, id)
}

func (s *Service) resolveLevel(ctx context.Context, parentID *string) (int, error) {
	if parentID == nil {
		return 0, nil
	}
	parent, err := s.categories.GetByID(ctx, *parentID)
	if err != nil {
		return 0, err
	}
	return parent.Level + 1, nil
}
