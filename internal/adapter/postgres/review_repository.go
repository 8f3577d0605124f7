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

type reviewRepository struct {
	db DB
}

func NewReviewRepository(db DB) interfaces.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, star, content, user_id, product_id, order_id, created_at, updated_at`

func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	return r.listReviews(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return r.listReviews(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`, productID)
}

func (r *reviewRepository) listReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Star, &rv.Content, &rv.UserID, &rv.ProductID,
			&rv.OrderID, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id).
		Scan(&rv.ID, &rv.Star, &rv.Content, &rv.UserID, &rv.ProductID,
			&rv.OrderID, &rv.CreatedAt, &rv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan review: %w", err)
	}
	return &rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	rv.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, star, content, user_id, product_id, order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rv.ID, rv.Star, rv.Content, rv.UserID, rv.ProductID, rv.OrderID,
		rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reviews SET star = $1, content = $2, updated_at = $3 WHERE id = $4`,
		rv.Star, rv.Content, rv.UpdatedAt, rv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
