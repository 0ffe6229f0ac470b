package usecase

import (
	"context"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token being exchanged.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful login or
// registration.
type AuthOutput struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *UserProfile `json:"user"`
}

// UserProfile is the outward-safe projection of a user (no password hash).
type UserProfile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Roles []string  `json:"roles"`
}

// NewUserProfile projects a user entity into its outward-safe form.
func NewUserProfile(user *entity.User) *UserProfile {
	return &UserProfile{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Roles: user.RoleStrings(),
	}
}

// UserUsecase defines the interface for account and session operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}
