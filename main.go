package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/cart"
	"github.com/Ssaiyajin/Bottle-Crate-Store/checkout"
	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
	"github.com/Ssaiyajin/Bottle-Crate-Store/notify"
	"github.com/Ssaiyajin/Bottle-Crate-Store/routes"
	"github.com/Ssaiyajin/Bottle-Crate-Store/store"
)

func main() {
	log.Println("✅ Starting beverage store...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Session carts and checkout wiring
	carts := cart.NewStore()
	svc := checkout.NewService(
		store.NewCatalogStore(db),
		store.NewOrderStore(db),
		newNotifier(),
	)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, carts, svc)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// newNotifier picks the receipt function endpoint when configured, otherwise
// order summaries are spooled to the local receipt directory.
func newNotifier() checkout.Notifier {
	if endpoint := os.Getenv("RECEIPT_FUNCTION_URL"); endpoint != "" {
		return notify.NewHTTPNotifier(endpoint)
	}
	dir := os.Getenv("RECEIPT_DIR")
	if dir == "" {
		dir = "receipts"
	}
	log.Printf("⚠️ RECEIPT_FUNCTION_URL not set, spooling order summaries to %s", dir)
	return &notify.FileSpool{Dir: dir}
}
