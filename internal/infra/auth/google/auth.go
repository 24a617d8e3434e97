// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"herenow/config"
	"herenow/internal/domain/service"
	"herenow/internal/errors"
)

// AuthServiceImpl implements service.OAuthAuthService against Google's
// ID token verification endpoint.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken checks the token's signature and audience against Google's
// published keys and returns the embedded profile.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google oauth client ID not configured")
	}

	payload, err := s.validate(ctx, token, s.clientID)
	if err != nil {
		s.logger.Error("Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "verify ID token")
	}

	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return nil, errors.New("email not verified")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	s.logger.Info("Google ID token verified",
		slog.String("subject", payload.Subject),
		slog.String("email", email))

	return &service.OAuthUser{
		ProviderUserID: payload.Subject,
		Email:          email,
		Name:           name,
	}, nil
}
