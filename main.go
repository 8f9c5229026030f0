package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/KevinStop/inventory-management-frontend/cart"
	"github.com/KevinStop/inventory-management-frontend/lifecycle"
	"github.com/KevinStop/inventory-management-frontend/routes"
	"github.com/KevinStop/inventory-management-frontend/services"
	"github.com/KevinStop/inventory-management-frontend/storage"
)

func main() {
	log.Println("✅ Starting loan portal...")

	// Load environment variables
	_ = godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3000"
	}
	secret := os.Getenv("SESSION_JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ SESSION_JWT_SECRET is required")
	}
	cartPath := os.Getenv("CART_DB_PATH")
	if cartPath == "" {
		cartPath = "portal.db"
	}

	// Local store for the selection cart
	kv, err := storage.Open(cartPath)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}
	defer kv.Close()

	// Backend clients and the explicitly constructed cart/lifecycle objects
	client := services.NewClient(apiURL)
	cartStore := cart.NewStore(kv)
	controller := lifecycle.NewController(client.Requests)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Client:    client,
		Cart:      cartStore,
		Lifecycle: controller,
		Secret:    []byte(secret),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Portal running on port %s (backend: %s)...", port, apiURL)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
