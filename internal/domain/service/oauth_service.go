package service

import (
	"context"
)

// OAuthUser is the profile extracted from a verified federated identity token.
type OAuthUser struct {
	// ProviderUserID is the provider's stable subject for this account.
	ProviderUserID string
	Email          string
	Name           string
}

// OAuthAuthService verifies federated identity tokens (Google Sign-In).
type OAuthAuthService interface {
	// VerifyIDToken checks the token's signature and audience and returns
	// the embedded profile.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
