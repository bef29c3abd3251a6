package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"
)

// OpenDatabase opens the configured GORM database and migrates the schema.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Cart{},
		&models.CartEntry{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// SeedItems populates the catalog when it is empty. The catalog is managed
// externally in production; this seed is the development/test fixture.
func SeedItems(repo repositories.ItemRepository) error {
	existing, err := repo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items := []models.Item{
		{Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "A widget that is round"},
		{Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "A widget that is square"},
	}
	for i := range items {
		if err := repo.Create(&items[i]); err != nil {
			return fmt.Errorf("failed to seed item %s: %w", items[i].Name, err)
		}
		log.Printf("Seeded item: %s (ID: %d)", items[i].Name, items[i].ID)
	}
	return nil
}

// NewApp wires repositories, services and handlers into a Fiber application.
// The publisher may be nil when no message broker is configured.
func NewApp(db *gorm.DB, jwtSecret string, publisher services.OrderEventPublisher) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	itemRepo := repositories.NewGORMItemRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cartRepo, jwtSecret)
	cartService := services.NewCartService(userRepo, itemRepo, cartRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, cartRepo, publisher)
	itemService := services.NewItemService(itemRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(authService, userRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	itemHandler := handlers.NewItemHandler(itemService)

	app := fiber.New()
	app.Use(logger.New(), recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public login endpoint at the app root; everything under /api except
	// user creation requires a bearer token.
	userHandler.RegisterLoginRoute(app)

	api := app.Group("/api")
	auth := middleware.AuthRequired(authService)
	userHandler.RegisterRoutes(api, auth)
	cartHandler.RegisterRoutes(api, auth)
	orderHandler.RegisterRoutes(api, auth)
	itemHandler.RegisterRoutes(api, auth)

	return app
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "storefront.db")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := OpenDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := SeedItems(repositories.NewGORMItemRepository(db)); err != nil {
		log.Fatalf("Failed to seed items: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var publisher services.OrderEventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		// Consume our own order events so the queue does not grow unbounded
		// when no dedicated worker is deployed.
		go func() {
			log.Println("Starting RabbitMQ consumer for orders...")
			consumerErr := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
				log.Printf("Received order event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	app := NewApp(db, viper.GetString("JWT_SECRET"), publisher)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
