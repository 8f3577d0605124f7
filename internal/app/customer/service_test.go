package customer

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
		memory.NewUserRepository(store),
		memory.NewAddressRepository(store),
		memory.NewFavoriteRepository(store),
		memory.NewReviewRepository(store),
		logger.New("test", "error"),
	)
}

func createUser(t *testing.T, svc *Service) *domain.User {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), domain.User{
		Name:  "Alice Nguyen",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	return u
}

func TestCreateUser(t *testing.T) {
	svc := setup(t)

	t.Run("Success with defaults", func(t *testing.T) {
		u := createUser(t, svc)
		assert.NotEmpty(t, u.ID)
		assert.True(t, strings.HasPrefix(u.Code, "USER-"))
		assert.Equal(t, domain.RoleUser, u.Role)
		assert.Equal(t, domain.UserActive, u.Status)
		assert.False(t, u.RegisteredAt.IsZero())
	})

	t.Run("Fail on missing email", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), domain.User{Name: "No Mail"})
		assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
	})
}

func TestUpdateUser(t *testing.T) {
	svc := setup(t)
	u := createUser(t, svc)

	phone := "+1-202-555-0147"
	role := domain.RoleAdmin
	updated, err := svc.UpdateUser(context.Background(), u.ID, interfaces.UserUpdate{
		Phone: &phone,
		Role:  &role,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.Equal(t, u.Email, updated.Email)

	empty := ""
	_, err = svc.UpdateUser(context.Background(), u.ID, interfaces.UserUpdate{Email: &empty})
	assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
}

func TestAddresses(t *testing.T) {
	svc := setup(t)
	u := createUser(t, svc)

	t.Run("Create requires an existing user", func(t *testing.T) {
		_, err := svc.CreateAddress(context.Background(), domain.Address{
			UserID: "missing",
			Street: "12 Rue des Fleurs",
			City:   "Lyon",
		})
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})

	t.Run("Lifecycle", func(t *testing.T) {
		a, err := svc.CreateAddress(context.Background(), domain.Address{
			UserID:  u.ID,
			Street:  "12 Rue des Fleurs",
			City:    "Lyon",
			Country: "France",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)

		addresses, err := svc.ListAddresses(context.Background(), u.ID)
		require.NoError(t, err)
		require.Len(t, addresses, 1)

		zip := "69002"
		updated, err := svc.UpdateAddress(context.Background(), a.ID, interfaces.AddressUpdate{ZipCode: &zip})
		require.NoError(t, err)
		assert.Equal(t, zip, updated.ZipCode)
		assert.Equal(t, "Lyon", updated.City)

		require.NoError(t, svc.DeleteAddress(context.Background(), a.ID))
		addresses, err = svc.ListAddresses(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Empty(t, addresses)
	})
}

func TestFavorites(t *testing.T) {
	svc := setup(t)
	u := createUser(t, svc)

	f, err := svc.AddFavorite(context.Background(), domain.FavoriteProduct{
		UserID:    u.ID,
		ProductID: "perfume-1",
	})
	require.NoError(t, err)

	favorites, err := svc.ListFavorites(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	require.NoError(t, svc.RemoveFavorite(context.Background(), f.ID))
	favorites, err = svc.ListFavorites(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	_, err = svc.AddFavorite(context.Background(), domain.FavoriteProduct{UserID: u.ID})
	assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
}

func TestReviews(t *testing.T) {
	svc := setup(t)
	u := createUser(t, svc)

	t.Run("Star bounds", func(t *testing.T) {
		for _, star := range []int{0, 6, -1} {
			_, err := svc.CreateReview(context.Background(), domain.Review{
				UserID:    u.ID,
				ProductID: "perfume-1",
				Star:      star,
			})
			assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
		}
	})

	t.Run("Lifecycle", func(t *testing.T) {
		r, err := svc.CreateReview(context.Background(), domain.Review{
			UserID:    u.ID,
			ProductID: "perfume-1",
			Star:      4,
			Content:   "Smells great",
		})
		require.NoError(t, err)

		reviews, err := svc.ListProductReviews(context.Background(), "perfume-1")
		require.NoError(t, err)
		require.Len(t, reviews, 1)

		star := 5
		updated, err := svc.UpdateReview(context.Background(), r.ID, interfaces.ReviewUpdate{Star: &star})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Star)
		assert.Equal(t, "Smells great", updated.Content)

		bad := 9
		_, err = svc.UpdateReview(context.Background(), r.ID, interfaces.ReviewUpdate{Star: &bad})
		assert.ErrorIs(t, err, interfaces.ErrInvalidInput)

		require.NoError(t, svc.DeleteReview(context.Background(), r.ID))
		_, err = svc.GetReview(context.Background(), r.ID)
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}
