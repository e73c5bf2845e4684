package usecase

import (
	"context"
	"errors"

	authdomain "expense-tracker-api/internal/auth/domain"
	authdto "expense-tracker-api/internal/auth/dto"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoFields           = errors.New("no fields to update")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new account and issues a session token
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login verifies credentials and issues a session token
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// Authenticate resolves a bearer token to a live user. Token failures are
	// returned as the pkg/token sentinel errors; a token whose user no longer
	// exists fails with ErrUserNotFound.
	Authenticate(tokenString string) (*authdomain.User, error)

	// GetProfile returns the user projection for an authenticated user
	GetProfile(userID string) (*authdomain.User, error)

	// UpdateProfile applies the supplied fields and uploads a new avatar when
	// AvatarPath is set
	UpdateProfile(ctx context.Context, userID string, req authdto.ProfileUpdateRequest) (*authdomain.User, error)
}
