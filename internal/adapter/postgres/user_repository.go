package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gdevgproject/perfume-shop/internal/domain"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type userRepository struct {
	db DB
}

func NewUserRepository(db DB) interfaces.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, code, name, email, phone, role, status, default_address_id,
	birthday, gender, registered_at, created_at, updated_at`

func scanUser(row Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Code, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status,
		&u.DefaultAddressID, &u.Birthday, &u.Gender, &u.RegisteredAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	u.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, code, name, email, phone, role, status, default_address_id,
			birthday, gender, registered_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.Code, u.Name, u.Email, u.Phone, u.Role, u.Status, u.DefaultAddressID,
		u.Birthday, u.Gender, u.RegisteredAt, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET name = $1, email = $2, phone = $3, role = $4, status = $5,
			default_address_id = $6, birthday = $7, gender = $8, updated_at = $9
		WHERE id = $10`,
		u.Name, u.Email, u.Phone, u.Role, u.Status, u.DefaultAddressID,
		u.Birthday, u.Gender, u.UpdatedAt, u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

type addressRepository struct {
	db DB
}

func NewAddressRepository(db DB) interfaces.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, street, city, state, country, zip_code
		FROM addresses WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]domain.Address, 0)
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.Country, &a.ZipCode); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	var a domain.Address
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, street, city, state, country, zip_code
		FROM addresses WHERE id = $1`, id,
	).Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.Country, &a.ZipCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan address: %w", err)
	}
	return &a, nil
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	a.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO addresses (id, user_id, street, city, state, country, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.Street, a.City, a.State, a.Country, a.ZipCode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}
	return nil
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE addresses SET street = $1, city = $2, state = $3, country = $4, zip_code = $5
		WHERE id = $6`,
		a.Street, a.City, a.State, a.Country, a.ZipCode, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

type favoriteRepository struct {
	db DB
}

func NewFavoriteRepository(db DB) interfaces.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, product_id FROM favorite_products WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]domain.FavoriteProduct, 0)
	for rows.Next() {
		var f domain.FavoriteProduct
		if err := rows.Scan(&f.ID, &f.UserID, &f.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *favoriteRepository) Create(ctx context.Context, f *domain.FavoriteProduct) error {
	f.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorite_products (id, user_id, product_id) VALUES ($1, $2, $3)`,
		f.ID, f.UserID, f.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorite_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
