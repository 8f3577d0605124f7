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

type brandRepository struct {
	db DB
}

func NewBrandRepository(db DB) interfaces.BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, logo, created_at, updated_at
		FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Logo, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	var b domain.Brand
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, logo, created_at, updated_at
		FROM brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.Description, &b.Logo, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan brand: %w", err)
	}
	return &b, nil
}

func (r *brandRepository) Create(ctx context.Context, b *domain.Brand) error {
	b.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO brands (id, name, description, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.Name, b.Description, b.Logo, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert brand: %w", err)
	}
	return nil
}

func (r *brandRepository) Update(ctx context.Context, b *domain.Brand) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE brands SET name = $1, description = $2, logo = $3, updated_at = $4
		WHERE id = $5`,
		b.Name, b.Description, b.Logo, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

type categoryRepository struct {
	db DB
}

func NewCategoryRepository(db DB) interfaces.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, parent_id, level, created_at, updated_at
		FROM categories ORDER BY level, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Level, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRow(ctx, `
		SELECT id, name, parent_id, level, created_at, updated_at
		FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.ParentID, &c.Level, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	c.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, parent_id, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.ParentID, c.Level, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET name = $1, parent_id = $2, level = $3, updated_at = $4
		WHERE id = $5`,
		c.Name, c.ParentID, c.Level, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	// No cascade: products referencing the category keep their category_id.
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
