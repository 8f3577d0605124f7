package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

type ProductStatus string

const (
	ProductActive ProductStatus = "active"
	ProductHidden ProductStatus = "hidden"
)

// Product is a perfume in the catalog.
type Product struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	ImportPrice   float64       `json:"import_price"`
	ListedPrice   float64       `json:"listed_price"`
	CategoryID    string        `json:"category_id"`
	BrandID       string        `json:"brand_id"`
	Gender        Gender        `json:"gender"`
	Ingredients   []string      `json:"ingredients"`
	Origin        string        `json:"origin"`
	Volumes       []int         `json:"volumes"`
	Stock         int           `json:"stock"`
	Concentration string        `json:"concentration"`
	TopNotes      []string      `json:"top_notes"`
	MiddleNotes   []string      `json:"middle_notes"`
	BaseNotes     []string      `json:"base_notes"`
	Longevity     string        `json:"longevity"`
	Sillage       string        `json:"sillage"`
	Status        ProductStatus `json:"status"`
	Views         int           `json:"views"`
	IsHot         bool          `json:"is_hot"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PerfumeGallery is a media item (image or video) attached to a product.
type PerfumeGallery struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Path      string `json:"path"`
	Type      string `json:"type"`
}
