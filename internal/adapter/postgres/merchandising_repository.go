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

type discountRepository struct {
	db DB
}

func NewDiscountRepository(db DB) interfaces.DiscountRepository {
	return &discountRepository{db: db}
}

const discountColumns = `id, code, percent, permanent, minimum_spend, maximum_spend,
	usage_limit, created_at, updated_at`

func scanDiscount(row Row) (*domain.Discount, error) {
	var d domain.Discount
	err := row.Scan(&d.ID, &d.Code, &d.Percent, &d.Permanent, &d.MinimumSpend,
		&d.MaximumSpend, &d.Limit, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan discount: %w", err)
	}
	return &d, nil
}

func (r *discountRepository) List(ctx context.Context) ([]domain.Discount, error) {
	rows, err := r.db.Query(ctx, `SELECT `+discountColumns+` FROM discounts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	var discounts []domain.Discount
	for rows.Next() {
		d, err := scanDiscount(rows)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, *d)
	}
	return discounts, rows.Err()
}

func (r *discountRepository) GetByID(ctx context.Context, id string) (*domain.Discount, error) {
	return scanDiscount(r.db.QueryRow(ctx, `SELECT `+discountColumns+` FROM discounts WHERE id = $1`, id))
}

func (r *discountRepository) Create(ctx context.Context, d *domain.Discount) error {
	d.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO discounts (id, code, percent, permanent, minimum_spend, maximum_spend,
			usage_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.Code, d.Percent, d.Permanent, d.MinimumSpend, d.MaximumSpend,
		d.Limit, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert discount: %w", err)
	}
	return nil
}

func (r *discountRepository) Update(ctx context.Context, d *domain.Discount) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE discounts SET code = $1, percent = $2, permanent = $3, minimum_spend = $4,
			maximum_spend = $5, usage_limit = $6, updated_at = $7
		WHERE id = $8`,
		d.Code, d.Percent, d.Permanent, d.MinimumSpend, d.MaximumSpend,
		d.Limit, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *discountRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *discountRepository) Products(ctx context.Context, discountID string) ([]domain.DiscountProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, discount_id, product_id FROM discount_products WHERE discount_id = $1`, discountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query discount products: %w", err)
	}
	defer rows.Close()

	links := make([]domain.DiscountProduct, 0)
	for rows.Next() {
		var dp domain.DiscountProduct
		if err := rows.Scan(&dp.ID, &dp.DiscountID, &dp.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan discount product: %w", err)
		}
		links = append(links, dp)
	}
	return links, rows.Err()
}

func (r *discountRepository) AddProduct(ctx context.Context, dp *domain.DiscountProduct) error {
	dp.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO discount_products (id, discount_id, product_id) VALUES ($1, $2, $3)`,
		dp.ID, dp.DiscountID, dp.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert discount product: %w", err)
	}
	return nil
}

func (r *discountRepository) RemoveProduct(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM discount_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete discount product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

type slideRepository struct {
	db DB
}

func NewSlideRepository(db DB) interfaces.SlideRepository {
	return &slideRepository{db: db}
}

const slideColumns = `id, name, arrow, dots, auto_play, fade, speed, active, created_at, updated_at`

func scanSlide(row Row) (*domain.Slide, error) {
	var s domain.Slide
	err := row.Scan(&s.ID, &s.Name, &s.Arrow, &s.Dots, &s.AutoPlay, &s.Fade,
		&s.Speed, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan slide: %w", err)
	}
	return &s, nil
}

func (r *slideRepository) List(ctx context.Context) ([]domain.Slide, error) {
	rows, err := r.db.Query(ctx, `SELECT `+slideColumns+` FROM slides ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close()

	var slides []domain.Slide
	for rows.Next() {
		s, err := scanSlide(rows)
		if err != nil {
			return nil, err
		}
		slides = append(slides, *s)
	}
	return slides, rows.Err()
}

func (r *slideRepository) GetByID(ctx context.Context, id string) (*domain.Slide, error) {
	return scanSlide(r.db.QueryRow(ctx, `SELECT `+slideColumns+` FROM slides WHERE id = $1`, id))
}

func (r *slideRepository) Create(ctx context.Context, s *domain.Slide) error {
	s.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO slides (id, name, arrow, dots, auto_play, fade, speed, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Name, s.Arrow, s.Dots, s.AutoPlay, s.Fade, s.Speed, s.Active,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert slide: %w", err)
	}
	return nil
}

func (r *slideRepository) Update(ctx context.Context, s *domain.Slide) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE slides SET name = $1, arrow = $2, dots = $3, auto_play = $4, fade = $5,
			speed = $6, active = $7, updated_at = $8
		WHERE id = $9`,
		s.Name, s.Arrow, s.Dots, s.AutoPlay, s.Fade, s.Speed, s.Active, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update slide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *slideRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *slideRepository) Gallery(ctx context.Context, slideID string) ([]domain.SlideGallery, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, slide_id, path, type, position
		FROM slide_galleries WHERE slide_id = $1 ORDER BY position`, slideID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slide gallery: %w", err)
	}
	defer rows.Close()

	items := make([]domain.SlideGallery, 0)
	for rows.Next() {
		var g domain.SlideGallery
		if err := rows.Scan(&g.ID, &g.SlideID, &g.Path, &g.Type, &g.Position); err != nil {
			return nil, fmt.Errorf("failed to scan slide gallery item: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *slideRepository) AddGalleryItem(ctx context.Context, item *domain.SlideGallery) error {
	item.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO slide_galleries (id, slide_id, path, type, position)
		VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.SlideID, item.Path, item.Type, item.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert slide gallery item: %w", err)
	}
	return nil
}

func (r *slideRepository) DeleteGalleryItem(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slide_galleries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete slide gallery item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
