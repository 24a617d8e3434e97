package repository

import (
	"context"

	"github.com/google/uuid"

	"herenow/internal/domain/entity"
	"herenow/internal/errors"
)

// ErrRefreshTokenNotFound is returned when no stored token matches the hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository handles persistence of hashed refresh tokens.
// Raw tokens are never stored; lookups go through the SHA-256 hash.
type RefreshTokenRepository interface {
	// Create persists a new hashed refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error
	// FindByTokenHash returns the stored token matching the hash;
	// ErrRefreshTokenNotFound when absent.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	// DeleteByTokenHash removes a single token, ending that session.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	// DeleteByUserID removes every token a user holds (logout everywhere).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	// DeleteExpired prunes tokens past their expiry and reports the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
