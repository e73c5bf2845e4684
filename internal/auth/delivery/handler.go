package delivery

import (
	"errors"
	"net/http"

	authdto "expense-tracker-api/internal/auth/dto"
	"expense-tracker-api/internal/auth/usecase"
	"expense-tracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication and profile HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new user account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, response.BindingErrors(err))
		return
	}

	result, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "Email already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	response.OK(c, http.StatusCreated, "User registered successfully", result)
}

// Login verifies credentials and issues a session token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, response.BindingErrors(err))
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	response.OK(c, http.StatusOK, "Login successful", result)
}

// GetProfile returns the authenticated user's profile
// GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.authUsecase.GetProfile(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}

	response.OK(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile updates name and/or avatar of the authenticated user
// PUT /api/auth/profile (multipart form: name?, avatar?)
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	req := authdto.ProfileUpdateRequest{}

	if name, ok := c.GetPostForm("name"); ok {
		if len(name) < 2 || len(name) > 255 {
			response.ValidationFailed(c, []response.FieldError{
				{Field: "name", Message: "Name must be between 2 and 255 characters"},
			})
			return
		}
		req.Name = &name
	}

	if file, err := c.FormFile("avatar"); err == nil {
		if ferr := validateImageUpload(file); ferr != nil {
			response.Error(c, http.StatusBadRequest, ferr.Error())
			return
		}
		path, cleanup, err := saveUploadTemp(c, file, "avatar")
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to process uploaded file")
			return
		}
		defer cleanup()
		req.AvatarPath = path
	}

	user, err := h.authUsecase.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	response.OK(c, http.StatusOK, "Profile updated successfully", user)
}
