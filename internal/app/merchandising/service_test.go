package merchandising

import (
	"context"
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
		memory.NewDiscountRepository(store),
		memory.NewSlideRepository(store),
		logger.New("test", "error"),
	)
}

func TestCreateDiscount(t *testing.T) {
	svc := setup(t)

	t.Run("Success", func(t *testing.T) {
		min := 50.0
		d, err := svc.CreateDiscount(context.Background(), domain.Discount{
			Code:         "SUMMER25",
			Percent:      25,
			MinimumSpend: &min,
			Limit:        100,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, d.ID)
		assert.False(t, d.CreatedAt.IsZero())
	})

	t.Run("Percent out of range", func(t *testing.T) {
		for _, percent := range []float64{0, -5, 101} {
			_, err := svc.CreateDiscount(context.Background(), domain.Discount{Code: "X", Percent: percent})
			assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
		}
	})

	t.Run("Spend bounds must be ordered", func(t *testing.T) {
		min, max := 100.0, 50.0
		_, err := svc.CreateDiscount(context.Background(), domain.Discount{
			Code:         "BAD",
			Percent:      10,
			MinimumSpend: &min,
			MaximumSpend: &max,
		})
		assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
	})
}

func TestDiscountProducts(t *testing.T) {
	svc := setup(t)
	d, err := svc.CreateDiscount(context.Background(), domain.Discount{Code: "SUMMER25", Percent: 25})
	require.NoError(t, err)

	t.Run("Binding requires an existing discount", func(t *testing.T) {
		_, err := svc.AddDiscountProduct(context.Background(), domain.DiscountProduct{
			DiscountID: "missing",
			ProductID:  "perfume-1",
		})
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})

	t.Run("Lifecycle", func(t *testing.T) {
		dp, err := svc.AddDiscountProduct(context.Background(), domain.DiscountProduct{
			DiscountID: d.ID,
			ProductID:  "perfume-1",
		})
		require.NoError(t, err)

		items, err := svc.DiscountProducts(context.Background(), d.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)

		require.NoError(t, svc.RemoveDiscountProduct(context.Background(), dp.ID))
		items, err = svc.DiscountProducts(context.Background(), d.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestUpdateDiscount(t *testing.T) {
	svc := setup(t)
	d, err := svc.CreateDiscount(context.Background(), domain.Discount{Code: "SUMMER25", Percent: 25})
	require.NoError(t, err)

	permanent := true
	updated, err := svc.UpdateDiscount(context.Background(), d.ID, interfaces.DiscountUpdate{Permanent: &permanent})
	require.NoError(t, err)
	assert.True(t, updated.Permanent)
	assert.Equal(t, "SUMMER25", updated.Code)

	bad := 150.0
	_, err = svc.UpdateDiscount(context.Background(), d.ID, interfaces.DiscountUpdate{Percent: &bad})
	assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
}

func TestSlides(t *testing.T) {
	svc := setup(t)

	t.Run("Create applies speed default", func(t *testing.T) {
		sl, err := svc.CreateSlide(context.Background(), domain.Slide{Name: "Homepage hero", AutoPlay: true})
		require.NoError(t, err)
		assert.Equal(t, 500, sl.Speed)
	})

	t.Run("Gallery lifecycle", func(t *testing.T) {
		sl, err := svc.CreateSlide(context.Background(), domain.Slide{Name: "Promo", Speed: 300})
		require.NoError(t, err)

		item, err := svc.AddSlideGalleryItem(context.Background(), domain.SlideGallery{
			SlideID: sl.ID,
			Path:    "/images/slides/summer.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, "image", item.Type)

		gallery, err := svc.SlideGallery(context.Background(), sl.ID)
		require.NoError(t, err)
		require.Len(t, gallery, 1)

		require.NoError(t, svc.DeleteSlideGalleryItem(context.Background(), item.ID))
		gallery, err = svc.SlideGallery(context.Background(), sl.ID)
		require.NoError(t, err)
		assert.Empty(t, gallery)
	})

	t.Run("Gallery item requires an existing slide", func(t *testing.T) {
		_, err := svc.AddSlideGalleryItem(context.Background(), domain.SlideGallery{
			SlideID: "missing",
			Path:    "/images/x.jpg",
		})
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}
