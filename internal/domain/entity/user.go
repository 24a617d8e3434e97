// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user owns listings and carries
// one or more authentication methods (credentials, Google).
type User struct {
	ID        uuid.UUID // Global unique identifier for the user.
	Email     string    // Primary contact email, used as the login identifier.
	Name      string    // Display name. May be empty for credential signups.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProviderType identifies the origin of an authentication method.
type ProviderType string

const (
	// ProviderTypeEmail is the email/password credential provider.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is the Google Sign-In federated provider.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication represents a single method of logging in (a credential).
// An email/password pair is one record; a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID    // The user this method belongs to.
	Provider       ProviderType // "email" or "google".
	ProviderUserID string       // Email for credentials, Google's 'sub' claim otherwise.
	PasswordHash   string       // bcrypt hash; populated only for the email provider.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session. It is used
// to obtain a new access token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 hash of the raw token; the raw value is never stored.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token's lifetime has passed.
func (t *RefreshToken) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}

// Session is the request-scoped identity resolved from an access token.
// It is threaded explicitly into every action-layer call; the core never
// reads identity from ambient state.
type Session struct {
	UserID uuid.UUID
	Email  string
	Name   string
}
