// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"restaurant-backend/controllers"
	"restaurant-backend/routes"
	"restaurant-backend/store"
	"restaurant-backend/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	} else {
		log.Println("Warning: JWT_SECRET not set, using insecure default")
	}
	if hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS")); err == nil && hours > 0 {
		utils.TokenExpiry = time.Duration(hours) * time.Hour
	}

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "restaurant"
	}
	db := store.NewMongoStore(client, dbName)

	// Upload file storage
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	files, err := utils.NewFileStore(uploadDir)
	if err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	// Seed the admin user and settings on first run
	if err := bootstrap(context.Background(), db); err != nil {
		log.Fatal("Bootstrap failed:", err)
	}

	// Initialize controllers
	menuController := controllers.NewMenuController(db)
	cartController := controllers.NewCartController(db)
	intakeController := controllers.NewIntakeController(db, emailService)
	contentController := controllers.NewContentController(db)
	orderController := controllers.NewOrderController(db, emailService)
	adminController := controllers.NewAdminController(db)
	uploadController := controllers.NewUploadController(files)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		menuController, cartController, intakeController,
		contentController, orderController, adminController, uploadController)

	// CORS
	origins := strings.Split(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 1 && origins[0] == "" {
		origins = []string{"*"}
	}
	handler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
