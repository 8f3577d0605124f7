package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/adapter/memory"
	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

func setup(t *testing.T) *Service {
	t.Helper()
	store := memory.NewStore()
	return NewService(
		memory.NewProductRepository(store),
		memory.NewBrandRepository(store),
		memory.NewCategoryRepository(store),
		logger.New("test", "error"),
	)
}

func TestCreateProduct(t *testing.T) {
	svc := setup(t)

	t.Run("Success with defaults", func(t *testing.T) {
		p, err := svc.CreateProduct(context.Background(), domain.Product{
			Name:  "Bleu de Chanel",
			Price: 145,
			Stock: 10,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.True(t, strings.HasPrefix(p.Code, "PERFUME-"))
		assert.Equal(t, domain.GenderUnisex, p.Gender)
		assert.Equal(t, domain.ProductActive, p.Status)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("Fail on missing name", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), domain.Product{Price: 10})
		assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
	})

	t.Run("Fail on negative price", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), domain.Product{Name: "x", Price: -1})
		assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
	})
}

func TestUpdateProduct(t *testing.T) {
	svc := setup(t)
	p, err := svc.CreateProduct(context.Background(), domain.Product{
		Name:        "Sauvage",
		Price:       130,
		Stock:       5,
		Origin:      "France",
		TopNotes:    []string{"bergamot"},
		Gender:      domain.GenderMale,
	})
	require.NoError(t, err)

	t.Run("Merges only provided fields", func(t *testing.T) {
		newPrice := 120.0
		hot := true
		updated, err := svc.UpdateProduct(context.Background(), p.ID, interfaces.ProductUpdate{
			Price: &newPrice,
			IsHot: &hot,
		})
		require.NoError(t, err)
		assert.Equal(t, 120.0, updated.Price)
		assert.True(t, updated.IsHot)
		assert.Equal(t, "Sauvage", updated.Name)
		assert.Equal(t, "France", updated.Origin)
		assert.Equal(t, []string{"bergamot"}, updated.TopNotes)
		assert.Equal(t, domain.GenderMale, updated.Gender)
		assert.True(t, updated.UpdatedAt.After(p.UpdatedAt) || updated.UpdatedAt.Equal(p.UpdatedAt))
	})

	t.Run("Rejects merge that empties the name", func(t *testing.T) {
		empty := ""
		_, err := svc.UpdateProduct(context.Background(), p.ID, interfaces.ProductUpdate{Name: &empty})
		assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
	})

	t.Run("Unknown id", func(t *testing.T) {
		name := "whatever"
		_, err := svc.UpdateProduct(context.Background(), "missing", interfaces.ProductUpdate{Name: &name})
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestProductGallery(t *testing.T) {
	svc := setup(t)
	p, err := svc.CreateProduct(context.Background(), domain.Product{Name: "Black Orchid", Price: 180})
	require.NoError(t, err)

	item, err := svc.AddProductGalleryItem(context.Background(), domain.PerfumeGallery{
		ProductID: p.ID,
		Path:      "/images/black-orchid.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "image", item.Type)

	gallery, err := svc.ProductGallery(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, gallery, 1)

	require.NoError(t, svc.DeleteProductGalleryItem(context.Background(), item.ID))
	gallery, err = svc.ProductGallery(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, gallery)

	_, err = svc.AddProductGalleryItem(context.Background(), domain.PerfumeGallery{ProductID: p.ID})
	assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
}

func TestCategoryLevels(t *testing.T) {
	svc := setup(t)

	root, err := svc.CreateCategory(context.Background(), domain.Category{Name: "Men"})
	require.NoError(t, err)
	assert.Equal(t, 0, root.Level)
	assert.Nil(t, root.ParentID)

	child, err := svc.CreateCategory(context.Background(), domain.Category{Name: "Eau de Parfum", ParentID: &root.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, child.Level)

	t.Run("Reparenting recomputes level", func(t *testing.T) {
		grand, err := svc.CreateCategory(context.Background(), domain.Category{Name: "Intense", ParentID: &child.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, grand.Level)

		moved, err := svc.UpdateCategory(context.Background(), grand.ID, interfaces.CategoryUpdate{ParentID: &root.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, moved.Level)
	})

	t.Run("Clearing the parent makes a root", func(t *testing.T) {
		empty := ""
		moved, err := svc.UpdateCategory(context.Background(), child.ID, interfaces.CategoryUpdate{ParentID: &empty})
		require.NoError(t, err)
		assert.Nil(t, moved.ParentID)
		assert.Equal(t, 0, moved.Level)
	})

	t.Run("Unknown parent", func(t *testing.T) {
		missing := "missing"
		_, err := svc.CreateCategory(context.Background(), domain.Category{Name: "Orphan", ParentID: &missing})
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestBrandCRUD(t *testing.T) {
	svc := setup(t)

	b, err := svc.CreateBrand(context.Background(), domain.Brand{Name: "Chanel"})
	require.NoError(t, err)

	logo := "/images/chanel.png"
	updated, err := svc.UpdateBrand(context.Background(), b.ID, interfaces.BrandUpdate{Logo: &logo})
	require.NoError(t, err)
	assert.Equal(t, logo, updated.Logo)
	assert.Equal(t, "Chanel", updated.Name)

	require.NoError(t, svc.DeleteBrand(context.Background(), b.ID))
	_, err = svc.GetBrand(context.Background(), b.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	err = svc.DeleteBrand(context.Background(), b.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}
