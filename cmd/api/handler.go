package api

import (
	"fmt"
	"log"
	"net/http"

	authUsecase "expense-tracker-api/internal/auth/usecase"
	expenseUsecase "expense-tracker-api/internal/expense/usecase"
	"expense-tracker-api/pkg/config"
	"expense-tracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	expenseUsecase expenseUsecase.ExpenseUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, expenseUc expenseUsecase.ExpenseUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		expenseUsecase: expenseUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(recovery(h.config))
	r.Use(corsMiddleware())

	SetupRoutes(r, h.authUsecase, h.expenseUsecase, h.config)

	return r.Run(addr)
}

// recovery renders panics as a 500 envelope. Panic detail is only exposed
// outside production.
func recovery(cfg *config.Config) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)

		message := "Internal server error"
		if !cfg.IsProduction() {
			message = fmt.Sprintf("Internal server error: %v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Body{
			Success: false,
			Message: message,
		})
	})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
