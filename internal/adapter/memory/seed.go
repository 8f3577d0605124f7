package memory

import (
	"time"

	"github.com/gdevgproject/perfume-shop/internal/domain"
)

// Seed fills the store with a small demo catalog so the API has data to
// serve in memory mode. IDs are fixed strings to keep demo requests
// reproducible.
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	brands := []domain.Brand{
		{ID: "brand-chanel", Name: "Chanel", Description: "French luxury fashion house", Logo: "/images/brands/chanel.png", CreatedAt: now, UpdatedAt: now},
		{ID: "brand-dior", Name: "Dior", Description: "Parisian couture and fragrance house", Logo: "/images/brands/dior.png", CreatedAt: now, UpdatedAt: now},
		{ID: "brand-tomford", Name: "Tom Ford", Description: "American luxury brand", Logo: "/images/brands/tomford.png", CreatedAt: now, UpdatedAt: now},
	}
	for _, b := range brands {
		s.brands[b.ID] = b
	}

	men := "cat-men"
	women := "cat-women"
	categories := []domain.Category{
		{ID: men, Name: "Men", Level: 0, CreatedAt: now, UpdatedAt: now},
		{ID: women, Name: "Women", Level: 0, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-men-edp", Name: "Eau de Parfum", ParentID: &men, Level: 1, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-women-edp", Name: "Eau de Parfum", ParentID: &women, Level: 1, CreatedAt: now, UpdatedAt: now},
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}

	products := []domain.Product{
		{
			ID: "perfume-bleu", Code: "PERFUME-0001", Name: "Bleu de Chanel",
			Description:   "Woody aromatic fragrance for men",
			Price:         145, ImportPrice: 90, ListedPrice: 160,
			CategoryID: "cat-men-edp", BrandID: "brand-chanel",
			Gender:      domain.GenderMale,
			Ingredients: []string{"citrus", "incense", "cedar"},
			Origin:      "France",
			Volumes:     []int{50, 100, 150},
			Stock:       42,
			Concentration: "EDP",
			TopNotes:    []string{"grapefruit", "lemon"},
			MiddleNotes: []string{"ginger", "nutmeg"},
			BaseNotes:   []string{"sandalwood", "cedar"},
			Longevity:   "long lasting", Sillage: "moderate",
			Status: domain.ProductActive, Views: 1280, IsHot: true,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "perfume-sauvage", Code: "PERFUME-0002", Name: "Sauvage",
			Description:   "Fresh spicy fragrance inspired by wide-open spaces",
			Price:         130, ImportPrice: 80, ListedPrice: 155,
			CategoryID: "cat-men-edp", BrandID: "brand-dior",
			Gender:      domain.GenderMale,
			Ingredients: []string{"bergamot", "pepper", "ambroxan"},
			Origin:      "France",
			Volumes:     []int{60, 100},
			Stock:       58,
			Concentration: "EDP",
			TopNotes:    []string{"bergamot"},
			MiddleNotes: []string{"sichuan pepper", "lavender"},
			BaseNotes:   []string{"ambroxan", "vanilla"},
			Longevity:   "very long lasting", Sillage: "strong",
			Status: domain.ProductActive, Views: 2140, IsHot: true,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "perfume-blackorchid", Code: "PERFUME-0003", Name: "Black Orchid",
			Description:   "Luxurious and sensual oriental chypre",
			Price:         180, ImportPrice: 110, ListedPrice: 200,
			CategoryID: "cat-women-edp", BrandID: "brand-tomford",
			Gender:      domain.GenderUnisex,
			Ingredients: []string{"black truffle", "orchid", "patchouli"},
			Origin:      "USA",
			Volumes:     []int{30, 50, 100},
			Stock:       17,
			Concentration: "EDP",
			TopNotes:    []string{"truffle", "bergamot"},
			MiddleNotes: []string{"black orchid", "spices"},
			BaseNotes:   []string{"patchouli", "vanilla", "incense"},
			Longevity:   "long lasting", Sillage: "enormous",
			Status: domain.ProductActive, Views: 940, IsHot: false,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, p := range products {
		s.products[p.ID] = p
	}

	galleries := []domain.PerfumeGallery{
		{ID: "gal-bleu-1", ProductID: "perfume-bleu", Path: "/images/perfumes/bleu-1.jpg", Type: "image"},
		{ID: "gal-bleu-2", ProductID: "perfume-bleu", Path: "/images/perfumes/bleu-2.jpg", Type: "image"},
		{ID: "gal-sauvage-1", ProductID: "perfume-sauvage", Path: "/images/perfumes/sauvage-1.jpg", Type: "image"},
		{ID: "gal-blackorchid-1", ProductID: "perfume-blackorchid", Path: "/videos/perfumes/blackorchid.mp4", Type: "video"},
	}
	for _, g := range galleries {
		s.galleries[g.ID] = g
	}

	users := []domain.User{
		{ID: "user-admin", Code: "USER-0001", Name: "Store Admin", Email: "admin@perfume.shop", Phone: "+1-202-555-0101", Role: domain.RoleAdmin, Status: domain.UserActive, RegisteredAt: now, CreatedAt: now, UpdatedAt: now},
		{ID: "user-alice", Code: "USER-0002", Name: "Alice Nguyen", Email: "alice@example.com", Phone: "+1-202-555-0147", Role: domain.RoleUser, Status: domain.UserActive, RegisteredAt: now, CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range users {
		s.users[u.ID] = u
	}

	s.addresses["addr-alice-1"] = domain.Address{
		ID: "addr-alice-1", UserID: "user-alice",
		Street: "12 Rue des Fleurs", City: "Lyon", State: "Auvergne-Rhone-Alpes",
		Country: "France", ZipCode: "69002",
	}

	s.favorites["fav-alice-bleu"] = domain.FavoriteProduct{
		ID: "fav-alice-bleu", UserID: "user-alice", ProductID: "perfume-bleu",
	}

	s.reviews["review-1"] = domain.Review{
		ID: "review-1", Star: 5, Content: "Smells incredible, lasts all day.",
		UserID: "user-alice", ProductID: "perfume-sauvage", OrderID: "order-seed-1",
		CreatedAt: now, UpdatedAt: now,
	}

	createdNote := "Order created"
	changeNote := "Order status change to processing"
	s.orders["order-seed-1"] = domain.Order{
		ID: "order-seed-1", Code: "ORDER-0001", UserID: "user-alice",
		Items: []domain.OrderItem{
			{ID: "item-seed-1", OrderID: "order-seed-1", ProductID: "perfume-sauvage", Quantity: 1, Price: 130},
		},
		TotalAmount: 130, Status: domain.StatusProcessing,
		CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour),
	}
	s.histories["order-seed-1"] = []domain.OrderHistory{
		{ID: "hist-seed-1", OrderID: "order-seed-1", Status: domain.StatusPending, UpdatedBy: domain.ActorSystem, UpdatedAt: now.Add(-48 * time.Hour), Note: &createdNote},
		{ID: "hist-seed-2", OrderID: "order-seed-1", Status: domain.StatusProcessing, UpdatedBy: domain.ActorAdmin, UpdatedAt: now.Add(-24 * time.Hour), Note: &changeNote},
	}

	minSpend := 50.0
	s.discounts["discount-summer"] = domain.Discount{
		ID: "discount-summer", Code: "SUMMER25", Percent: 25, Permanent: false,
		MinimumSpend: &minSpend, Limit: 100,
		CreatedAt: now, UpdatedAt: now,
	}
	s.discountProducts["dp-summer-bleu"] = domain.DiscountProduct{
		ID: "dp-summer-bleu", DiscountID: "discount-summer", ProductID: "perfume-bleu",
	}

	s.slides["slide-home"] = domain.Slide{
		ID: "slide-home", Name: "Homepage hero", Arrow: true, Dots: true,
		AutoPlay: true, Fade: false, Speed: 500, Active: true,
		CreatedAt: now, UpdatedAt: now,
	}
	slideItems := []domain.SlideGallery{
		{ID: "sg-home-1", SlideID: "slide-home", Path: "/images/slides/summer-sale.jpg", Type: "image", Position: 0},
		{ID: "sg-home-2", SlideID: "slide-home", Path: "/images/slides/new-arrivals.jpg", Type: "image", Position: 1},
	}
	for _, item := range slideItems {
		s.slideGalleries[item.ID] = item
	}
}
