package repository

import (
	"context"

	"github.com/google/uuid"

	"herenow/internal/domain/entity"
	"herenow/internal/errors"
)

// ErrAuthNotFound is returned when no credential record matches the lookup.
var ErrAuthNotFound = errors.New("authentication record not found")

// AuthRepository handles persistence of per-provider credential records.
// A user holds at most one record per provider.
type AuthRepository interface {
	// Create persists a new credential record.
	Create(ctx context.Context, auth *entity.Authentication) error
	// FindByUserAndProvider returns the credential record a user holds for
	// the given provider; ErrAuthNotFound when absent.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)
	// FindByProviderUserID returns the record bound to an external provider
	// subject (e.g. a Google account ID); ErrAuthNotFound when absent.
	FindByProviderUserID(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}
