package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/adapter/memory"
	"github.com/gdevgproject/perfume-shop/internal/adapter/postgres"
	"github.com/gdevgproject/perfume-shop/internal/adapter/rabbitmq"
	"github.com/gdevgproject/perfume-shop/internal/app/catalog"
	"github.com/gdevgproject/perfume-shop/internal/app/customer"
	"github.com/gdevgproject/perfume-shop/internal/app/merchandising"
	"github.com/gdevgproject/perfume-shop/internal/app/order"
	"github.com/gdevgproject/perfume-shop/internal/app/tracking"
	"github.com/gdevgproject/perfume-shop/internal/config"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"

	amqpAdapter "github.com/gdevgproject/perfume-shop/internal/adapter/amqp"
	httpAdapter "github.com/gdevgproject/perfume-shop/internal/adapter/http"
)

// repositories groups every repository implementation behind one struct so
// api-server wiring does not care which store backs them.
type repositories struct {
	orders     interfaces.OrderRepository
	products   interfaces.ProductRepository
	brands     interfaces.BrandRepository
	categories interfaces.CategoryRepository
	users      interfaces.UserRepository
	addresses  interfaces.AddressRepository
	favorites  interfaces.FavoriteRepository
	reviews    interfaces.ReviewRepository
	discounts  interfaces.DiscountRepository
	slides     interfaces.SlideRepository
}

func main() {
	mode := flag.String("mode", "", "Service mode: api-server, notification-subscriber")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	store := flag.String("store", "postgres", "Storage backend: postgres, memory")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port == 0 {
		*port = cfg.HTTP.Port
	}

	ctx := context.Background()
	lgr := logger.New(*mode, cfg.Log.Level)

	switch *mode {
	case "api-server":
		runAPIServer(ctx, cfg, lgr, *port, *store)
	case "notification-subscriber":
		runNotificationSubscriber(ctx, cfg, lgr)
	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPIServer(ctx context.Context, cfg *config.Config, lgr logger.Logger, port int, store string) {
	var (
		repos     repositories
		publisher interfaces.MessagePublisher
	)

	switch store {
	case "postgres":
		if err := postgres.Migrate(cfg.Database); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		db, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()

		lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
			"host": cfg.Database.Host,
			"db":   cfg.Database.Database,
		})

		mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer mqConn.Close()

		lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
			"host": cfg.RabbitMQ.Host,
		})

		repos = repositories{
			orders:     postgres.NewOrderRepository(db),
			products:   postgres.NewProductRepository(db),
			brands:     postgres.NewBrandRepository(db),
			categories: postgres.NewCategoryRepository(db),
			users:      postgres.NewUserRepository(db),
			addresses:  postgres.NewAddressRepository(db),
			favorites:  postgres.NewFavoriteRepository(db),
			reviews:    postgres.NewReviewRepository(db),
			discounts:  postgres.NewDiscountRepository(db),
			slides:     postgres.NewSlideRepository(db),
		}
		publisher = rabbitmq.NewPublisher(mqConn)

	case "memory":
		memStore := memory.NewStore()
		memory.Seed(memStore)

		lgr.Info("store_seeded", "In-memory store seeded with demo catalog", "startup", nil)

		repos = repositories{
			orders:     memory.NewOrderRepository(memStore),
			products:   memory.NewProductRepository(memStore),
			brands:     memory.NewBrandRepository(memStore),
			categories: memory.NewCategoryRepository(memStore),
			users:      memory.NewUserRepository(memStore),
			addresses:  memory.NewAddressRepository(memStore),
			favorites:  memory.NewFavoriteRepository(memStore),
			reviews:    memory.NewReviewRepository(memStore),
			discounts:  memory.NewDiscountRepository(memStore),
			slides:     memory.NewSlideRepository(memStore),
		}
		publisher = rabbitmq.NewNoopPublisher(lgr)

	default:
		log.Fatalf("Invalid store: %s", store)
	}

	orderService := order.NewService(repos.orders, repos.products, publisher, lgr)
	trackingService := tracking.NewService(repos.orders)
	catalogService := catalog.NewService(repos.products, repos.brands, repos.categories, lgr)
	customerService := customer.NewService(repos.users, repos.addresses, repos.favorites, repos.reviews, lgr)
	merchService := merchandising.NewService(repos.discounts, repos.slides, lgr)

	api := httpAdapter.NewServer(orderService, trackingService, catalogService, customerService, merchService, lgr)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API Server started on port %d", port), "startup", map[string]interface{}{
		"port":  port,
		"store": store,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API Server", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn, lgr)
	notificationHandler := amqpAdapter.NewNotificationHandler(lgr)

	lgr.Info("service_started", "Notification Subscriber started", "startup", nil)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := consumer.ConsumeStatusUpdates(ctx, notificationHandler.HandleStatusUpdate); err != nil {
			lgr.Error("consumer_error", "Error consuming status updates", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "shutdown", nil)
}
