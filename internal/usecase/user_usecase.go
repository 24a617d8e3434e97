package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"herenow/internal/domain/entity"
)

// SignupInput carries the data for a credential-based registration.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput carries a credential login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput bundles the authenticated user with a fresh token pair.
type AuthOutput struct {
	User             *entity.User `json:"user"`
	AccessToken      string       `json:"accessToken"`
	RefreshToken     string       `json:"refreshToken"`
	AccessExpiresAt  time.Time    `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time    `json:"refreshExpiresAt"`
}

// UserUsecase defines identity operations: registration, credential and
// federated login, token refresh, and logout.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// GoogleSignIn verifies a Google ID token and finds or creates the
	// matching account.
	GoogleSignIn(ctx context.Context, idToken string) (*AuthOutput, error)
	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
	// Logout revokes a single refresh token.
	Logout(ctx context.Context, refreshToken string) error
	// GetProfile loads the user behind a session.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
