package dto

import authdomain "expense-tracker-api/internal/auth/domain"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest carries only the fields the caller supplied; nil means
// "leave unchanged". AvatarPath is a local temp file pending upload.
type ProfileUpdateRequest struct {
	Name       *string
	AvatarPath string
}

type AuthResponse struct {
	User  *authdomain.User `json:"user"`
	Token string           `json:"token"`
}
