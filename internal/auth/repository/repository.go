package repository

import authdomain "expense-tracker-api/internal/auth/domain"

// UserRepository defines the interface for user data access. Find methods
// return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}
