package delivery

import (
	"errors"
	"net/http"
	"strings"

	"expense-tracker-api/internal/auth/usecase"
	"expense-tracker-api/pkg/response"
	"expense-tracker-api/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the request-boundary authentication gate. It extracts the
// bearer token, verifies it, resolves it to a live user and attaches the user
// to the request context. Every failure cause gets its own 401 message.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "No token provided. Access denied.")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid token format. Access denied.")
			c.Abort()
			return
		}

		user, err := authUsecase.Authenticate(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				response.Error(c, http.StatusUnauthorized, "Token expired. Please login again.")
			case errors.Is(err, token.ErrMalformed), errors.Is(err, token.ErrSignatureInvalid):
				response.Error(c, http.StatusUnauthorized, "Invalid token. Access denied.")
			case errors.Is(err, usecase.ErrUserNotFound):
				response.Error(c, http.StatusUnauthorized, "User not found. Access denied.")
			default:
				response.Error(c, http.StatusInternalServerError, "Authentication failed.")
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
