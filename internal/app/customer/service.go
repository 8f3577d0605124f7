package customer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// Service covers customer accounts: users, their addresses, favorites and
// product reviews.
type Service struct {
	users     interfaces.UserRepository
	addresses interfaces.AddressRepository
	favorites interfaces.FavoriteRepository
	reviews   interfaces.ReviewRepository
	logger    logger.Logger
}

func NewService(users interfaces.UserRepository, addresses interfaces.AddressRepository, favorites interfaces.FavoriteRepository, reviews interfaces.ReviewRepository, logger logger.Logger) *Service {
	return &Service{
		users:     users,
		addresses: addresses,
		favorites: favorites,
		reviews:   reviews,
		logger:    logger,
	}
}

// Users

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.Name == "" || u.Email == "" {
		return nil, interfaces.ErrInvalidInput
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.Status == "" {
		u.Status = domain.UserActive
	}
	u.Code = "USER-" + uuid.NewString()
	now := time.Now().UTC()
	u.RegisteredAt = now
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.users.Create(ctx, &u); err != nil {
		s.logger.Error("user_create_failed", "Failed to create user", "", nil, err)
		return nil, err
	}
	return &u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, upd interfaces.UserUpdate) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.DefaultAddressID != nil {
		if *upd.DefaultAddressID == "" {
			u.DefaultAddressID = nil
		} else {
			u.DefaultAddressID = upd.DefaultAddressID
		}
	}
	if upd.Birthday != nil {
		u.Birthday = upd.Birthday
	}
	if upd.Gender != nil {
		u.Gender = upd.Gender
	}
	if u.Name == "" || u.Email == "" {
		return nil, interfaces.ErrInvalidInput
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// Addresses

func (s *Service) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

func (s *Service) GetAddress(ctx context.Context, id string) (*domain.Address, error) {
	return s.addresses.GetByID(ctx, id)
}

func (s *Service) CreateAddress(ctx context.Context, a domain.Address) (*domain.Address, error) {
	if a.UserID == "" || a.Street == "" || a.City == "" {
		return nil, interfaces.ErrInvalidInput
	}
	// The owner must exist; addresses never float free of a user.
	if _, err := s.users.GetByID(ctx, a.UserID); err != nil {
		return nil, err
	}
	if err := s.addresses.Create(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) UpdateAddress(ctx context.Context, id string, upd interfaces.AddressUpdate) (*domain.Address, error) {
	a, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Street != nil {
		a.Street = *upd.Street
	}
	if upd.City != nil {
		a.City = *upd.City
	}
	if upd.State != nil {
		a.State = *upd.State
	}
	if upd.Country != nil {
		a.Country = *upd.Country
	}
	if upd.ZipCode != nil {
		a.ZipCode = *upd.ZipCode
	}
	if a.Street == "" || a.City == "" {
		return nil, interfaces.ErrInvalidInput
	}

	if err := s.addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteAddress(ctx context.Context, id string) error {
	return s.addresses.Delete(ctx, id)
}

// Favorites

func (s *Service) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteProduct, error) {
	return s.favorites.ListByUser(ctx, userID)
}

func (s *Service) AddFavorite(ctx context.Context, f domain.FavoriteProduct) (*domain.FavoriteProduct, error) {
	if f.UserID == "" || f.ProductID == "" {
		return nil, interfaces.ErrInvalidInput
	}
	if err := s.favorites.Create(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, id string) error {
	return s.favorites.Delete(ctx, id)
}

// Reviews

func (s *Service) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}

func (s *Service) ListProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *Service) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

func (s *Service) CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error) {
	if r.UserID == "" || r.ProductID == "" || r.Star < 1 || r.Star > 5 {
		return nil, interfaces.ErrInvalidInput
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.reviews.Create(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Service) UpdateReview(ctx context.Context, id string, upd interfaces.ReviewUpdate) (*domain.Review, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Star != nil {
		if *upd.Star < 1 || *upd.Star > 5 {
			return nil, interfaces.ErrInvalidInput
		}
		r.Star = *upd.Star
	}
	if upd.Content != nil {
		r.Content = *upd.Content
	}
	r.UpdatedAt = time.Now().UTC()

	if err := s.reviews.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}
