package api

import (
	"net/http"

	"expense-tracker-api/internal/auth/delivery"
	authUsecase "expense-tracker-api/internal/auth/usecase"
	expenseDelivery "expense-tracker-api/internal/expense/delivery"
	expenseUsecase "expense-tracker-api/internal/expense/usecase"
	"expense-tracker-api/pkg/config"
	"expense-tracker-api/pkg/ratelimit"
	"expense-tracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, expenseUc expenseUsecase.ExpenseUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc)
	expenseHandler := expenseDelivery.NewExpenseHandler(expenseUc)

	// Rate limiting only guards credential endpoints.
	authLimiter := ratelimit.New(cfg.AuthRateMax, cfg.AuthRateWindow)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authLimiter.Middleware(), authHandler.Register)
			auth.POST("/login", authLimiter.Middleware(), authHandler.Login)
			auth.GET("/profile", delivery.AuthMiddleware(authUc), authHandler.GetProfile)
			auth.PUT("/profile", delivery.AuthMiddleware(authUc), authHandler.UpdateProfile)
		}

		// Expense routes (protected)
		expenses := api.Group("/expenses")
		expenses.Use(delivery.AuthMiddleware(authUc))
		{
			expenses.GET("/stats", expenseHandler.GetStatistics)
			expenses.POST("", expenseHandler.CreateExpense)
			expenses.GET("", expenseHandler.GetExpenses)
			expenses.GET("/:id", expenseHandler.GetExpenseByID)
			expenses.PUT("/:id", expenseHandler.UpdateExpense)
			expenses.DELETE("/:id", expenseHandler.DeleteExpense)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})
}
