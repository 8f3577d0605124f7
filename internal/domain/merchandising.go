package domain

import "time"

// Discount is a promotion code. MinimumSpend/MaximumSpend are nil when the
// code has no spend bounds; Permanent codes ignore the usage limit.
type Discount struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Percent      float64   `json:"percent"`
	Permanent    bool      `json:"permanent"`
	MinimumSpend *float64  `json:"minimum_spend,omitempty"`
	MaximumSpend *float64  `json:"maximum_spend,omitempty"`
	Limit        int       `json:"limit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DiscountProduct binds a discount to one product it applies to.
type DiscountProduct struct {
	ID         string `json:"id"`
	DiscountID string `json:"discount_id"`
	ProductID  string `json:"product_id"`
}

// Slide is a configurable storefront carousel.
type Slide struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Arrow     bool      `json:"arrow"`
	Dots      bool      `json:"dots"`
	AutoPlay  bool      `json:"auto_play"`
	Fade      bool      `json:"fade"`
	Speed     int       `json:"speed"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlideGallery is one media item of a slide, shown in Position order.
type SlideGallery struct {
	ID       string `json:"id"`
	SlideID  string `json:"slide_id"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	Position int    `json:"position"`
}
