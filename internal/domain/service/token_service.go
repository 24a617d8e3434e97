package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the identity carried by a verified access token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// TokenPair bundles the two tokens issued on login and refresh.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService issues and validates the session tokens.
type TokenService interface {
	// GenerateTokenPair issues a short-lived access token and an opaque
	// refresh token for the user.
	GenerateTokenPair(userID uuid.UUID, email, name string) (*TokenPair, error)
	// ValidateAccessToken parses and verifies an access token, returning
	// its claims.
	ValidateAccessToken(token string) (*Claims, error)
	// HashRefreshToken derives the storage hash for a raw refresh token.
	HashRefreshToken(token string) string
}
