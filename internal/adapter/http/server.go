package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/app/catalog"
	"github.com/gdevgproject/perfume-shop/internal/app/customer"
	"github.com/gdevgproject/perfume-shop/internal/app/merchandising"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// Server wires every application service behind the /api/v1 surface.
type Server struct {
	engine   *gin.Engine
	orders   interfaces.OrderService
	tracking interfaces.TrackingService
	catalog  *catalog.Service
	customer *customer.Service
	merch    *merchandising.Service
	logger   logger.Logger
}

func NewServer(
	orders interfaces.OrderService,
	tracking interfaces.TrackingService,
	catalogSvc *catalog.Service,
	customerSvc *customer.Service,
	merchSvc *merchandising.Service,
	log logger.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(LoggingMiddleware(log), RecoveryMiddleware(log))

	s := &Server{
		engine:   engine,
		orders:   orders,
		tracking: tracking,
		catalog:  catalogSvc,
		customer: customerSvc,
		merch:    merchSvc,
		logger:   log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")

	orders := v1.Group("/orders")
	orders.POST("", s.createOrder)
	orders.GET("", s.listOrders)
	orders.GET("/:id", s.getOrder)
	orders.PATCH("/:id/status", s.changeOrderStatus)
	orders.GET("/:id/status", s.getOrderStatus)
	orders.GET("/:id/history", s.getOrderHistory)

	products := v1.Group("/products")
	products.GET("", s.listProducts)
	products.GET("/:id", s.getProduct)
	products.POST("", s.createProduct)
	products.PUT("/:id", s.updateProduct)
	products.DELETE("/:id", s.deleteProduct)
	products.GET("/:id/gallery", s.getProductGallery)
	products.POST("/:id/gallery", s.addProductGalleryItem)
	products.DELETE("/:id/gallery/:itemID", s.deleteProductGalleryItem)
	products.GET("/:id/reviews", s.listProductReviews)

	brands := v1.Group("/brands")
	brands.GET("", s.listBrands)
	brands.GET("/:id", s.getBrand)
	brands.POST("", s.createBrand)
	brands.PUT("/:id", s.updateBrand)
	brands.DELETE("/:id", s.deleteBrand)

	categories := v1.Group("/categories")
	categories.GET("", s.listCategories)
	categories.GET("/:id", s.getCategory)
	categories.POST("", s.createCategory)
	categories.PUT("/:id", s.updateCategory)
	categories.DELETE("/:id", s.deleteCategory)

	users := v1.Group("/users")
	users.GET("", s.listUsers)
	users.GET("/:id", s.getUser)
	users.POST("", s.createUser)
	users.PUT("/:id", s.updateUser)
	users.DELETE("/:id", s.deleteUser)
	users.GET("/:id/orders", s.listUserOrders)
	users.GET("/:id/addresses", s.listUserAddresses)
	users.GET("/:id/favorites", s.listUserFavorites)

	addresses := v1.Group("/addresses")
	addresses.GET("/:id", s.getAddress)
	addresses.POST("", s.createAddress)
	addresses.PUT("/:id", s.updateAddress)
	addresses.DELETE("/:id", s.deleteAddress)

	favorites := v1.Group("/favorites")
	favorites.POST("", s.addFavorite)
	favorites.DELETE("/:id", s.removeFavorite)

	reviews := v1.Group("/reviews")
	reviews.GET("", s.listReviews)
	reviews.GET("/:id", s.getReview)
	reviews.POST("", s.createReview)
	reviews.PUT("/:id", s.updateReview)
	reviews.DELETE("/:id", s.deleteReview)

	discounts := v1.Group("/discounts")
	discounts.GET("", s.listDiscounts)
	discounts.GET("/:id", s.getDiscount)
	discounts.POST("", s.createDiscount)
	discounts.PUT("/:id", s.updateDiscount)
	discounts.DELETE("/:id", s.deleteDiscount)
	discounts.GET("/:id/products", s.listDiscountProducts)
	discounts.POST("/:id/products", s.addDiscountProduct)
	discounts.DELETE("/:id/products/:itemID", s.removeDiscountProduct)

	slides := v1.Group("/slides")
	slides.GET("", s.listSlides)
	slides.GET("/:id", s.getSlide)
	slides.POST("", s.createSlide)
	slides.PUT("/:id", s.updateSlide)
	slides.DELETE("/:id", s.deleteSlide)
	slides.GET("/:id/gallery", s.getSlideGallery)
	slides.POST("/:id/gallery", s.addSlideGalleryItem)
	slides.DELETE("/:id/gallery/:itemID", s.deleteSlideGalleryItem)
}
