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

type productRepository struct {
	db DB
}

func NewProductRepository(db DB) interfaces.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, code, name, description, price, import_price, listed_price,
	category_id, brand_id, gender, ingredients, origin, volumes, stock, concentration,
	top_notes, middle_notes, base_notes, longevity, sillage, status, views, is_hot,
	created_at, updated_at`

func scanProduct(row Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Price, &p.ImportPrice, &p.ListedPrice,
		&p.CategoryID, &p.BrandID, &p.Gender, &p.Ingredients, &p.Origin, &p.Volumes,
		&p.Stock, &p.Concentration, &p.TopNotes, &p.MiddleNotes, &p.BaseNotes,
		&p.Longevity, &p.Sillage, &p.Status, &p.Views, &p.IsHot, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	p.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, code, name, description, price, import_price, listed_price,
			category_id, brand_id, gender, ingredients, origin, volumes, stock, concentration,
			top_notes, middle_notes, base_notes, longevity, sillage, status, views, is_hot,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`,
		p.ID, p.Code, p.Name, p.Description, p.Price, p.ImportPrice, p.ListedPrice,
		p.CategoryID, p.BrandID, p.Gender, p.Ingredients, p.Origin, p.Volumes, p.Stock,
		p.Concentration, p.TopNotes, p.MiddleNotes, p.BaseNotes, p.Longevity, p.Sillage,
		p.Status, p.Views, p.IsHot, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET name = $1, description = $2, price = $3, import_price = $4,
			listed_price = $5, category_id = $6, brand_id = $7, gender = $8, ingredients = $9,
			origin = $10, volumes = $11, stock = $12, concentration = $13, top_notes = $14,
			middle_notes = $15, base_notes = $16, longevity = $17, sillage = $18, status = $19,
			views = $20, is_hot = $21, updated_at = $22
		WHERE id = $23`,
		p.Name, p.Description, p.Price, p.ImportPrice, p.ListedPrice, p.CategoryID, p.BrandID,
		p.Gender, p.Ingredients, p.Origin, p.Volumes, p.Stock, p.Concentration, p.TopNotes,
		p.MiddleNotes, p.BaseNotes, p.Longevity, p.Sillage, p.Status, p.Views, p.IsHot,
		p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *productRepository) Gallery(ctx context.Context, productID string) ([]domain.PerfumeGallery, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, path, type FROM perfume_galleries WHERE product_id = $1`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product gallery: %w", err)
	}
	defer rows.Close()

	items := make([]domain.PerfumeGallery, 0)
	for rows.Next() {
		var g domain.PerfumeGallery
		if err := rows.Scan(&g.ID, &g.ProductID, &g.Path, &g.Type); err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *productRepository) AddGalleryItem(ctx context.Context, item *domain.PerfumeGallery) error {
	item.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO perfume_galleries (id, product_id, path, type) VALUES ($1, $2, $3, $4)`,
		item.ID, item.ProductID, item.Path, item.Type,
	)
	if err != nil {
		return fmt.Errorf("failed to insert gallery item: %w", err)
	}
	return nil
}

func (r *productRepository) DeleteGalleryItem(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM perfume_galleries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
