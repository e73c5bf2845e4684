package usecase

import (
	"context"
	"log"
	"strings"

	authdomain "expense-tracker-api/internal/auth/domain"
	authdto "expense-tracker-api/internal/auth/dto"
	"expense-tracker-api/internal/auth/repository"
	"expense-tracker-api/pkg/imagestore"
	"expense-tracker-api/pkg/token"
)

const avatarFolder = "expense-tracker/avatars"

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	images   imagestore.Store
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, images imagestore.Store) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		images:   images,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    email,
		Password: hashedPassword,
		Name:     strings.TrimSpace(req.Name),
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueSession(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password fail identically so callers cannot
	// probe which accounts exist.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.issueSession(user)
}

func (u *authUsecase) Authenticate(tokenString string) (*authdomain.User, error) {
	userID, err := u.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	// A valid token for a deleted account must not grant access.
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) GetProfile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID string, req authdto.ProfileUpdateRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	updated := false

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
		updated = true
	}

	if req.AvatarPath != "" {
		asset, err := u.images.Upload(ctx, req.AvatarPath, avatarFolder)
		if err != nil {
			return nil, err
		}
		oldAvatarID := user.AvatarID
		user.AvatarURL = asset.URL
		user.AvatarID = asset.PublicID
		updated = true

		// Best effort: the profile update must not fail because the previous
		// avatar could not be removed.
		if oldAvatarID != "" {
			if err := u.images.Delete(ctx, oldAvatarID); err != nil {
				log.Printf("failed to delete old avatar %s: %v", oldAvatarID, err)
			}
		}
	}

	if !updated {
		return nil, ErrNoFields
	}

	if err := u.userRepo.Update(user); err != nil {
		if user.AvatarID != "" && req.AvatarPath != "" {
			log.Printf("orphaned avatar asset %s after failed profile update: %v", user.AvatarID, err)
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) issueSession(user *authdomain.User) (*authdto.AuthResponse, error) {
	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &authdto.AuthResponse{
		User:  user,
		Token: signed,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
