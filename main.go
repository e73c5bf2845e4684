package main

import (
	"log"

	api "expense-tracker-api/cmd/api"
	authdomain "expense-tracker-api/internal/auth/domain"
	authRepo "expense-tracker-api/internal/auth/repository"
	authUsecase "expense-tracker-api/internal/auth/usecase"
	expensedomain "expense-tracker-api/internal/expense/domain"
	expenseRepo "expense-tracker-api/internal/expense/repository"
	expenseUsecase "expense-tracker-api/internal/expense/usecase"
	"expense-tracker-api/pkg/config"
	"expense-tracker-api/pkg/database"
	"expense-tracker-api/pkg/imagestore"
	"expense-tracker-api/pkg/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &expensedomain.Expense{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize image store (avatars and receipts live on Cloudinary)
	var images imagestore.Store
	if cfg.CloudinaryCloudName != "" {
		images, err = imagestore.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal("Failed to initialize image store:", err)
		}
	} else {
		log.Printf("[WARN] Cloudinary not configured, image uploads disabled")
		images = imagestore.NewDisabled()
	}

	// Initialize token service
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	expenseRepository := expenseRepo.NewGormExpenseRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokens, images)
	expenseUsecaseInstance := expenseUsecase.NewExpenseUsecase(expenseRepository, images)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, expenseUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
