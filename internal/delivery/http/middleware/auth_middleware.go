package middleware

import (
	"net/http"
	"strings"

	"herenow/internal/domain/entity"
	"herenow/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeySession is the echo.Context key holding the resolved *entity.Session.
const ContextKeySession = "session"

// ContextKeyUserID is the echo.Context key holding the authenticated user's uuid.UUID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and rejects the request when
// it is missing or invalid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.resolveSession(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		if session == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		c.Set(ContextKeySession, session)
		c.Set(ContextKeyUserID, session.UserID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the session when a valid Bearer token is
// present and leaves it unset otherwise. Listing mutations run behind this so
// the action layer can report "not found" for a missing record before it
// reports an authorization failure.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.resolveSession(c)
		if err == nil && session != nil {
			c.Set(ContextKeySession, session)
			c.Set(ContextKeyUserID, session.UserID)
		}

		return next(c)
	}
}

// resolveSession extracts and validates the Bearer token. A nil session with a
// nil error means no Authorization header was sent.
func (m *AuthMiddleware) resolveSession(c echo.Context) (*entity.Session, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errInvalidTokenFormat
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, errInvalidToken
	}

	return &entity.Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

// SessionFromContext returns the session set by Authenticate or
// OptionalAuthenticate, or nil when the request is anonymous.
func SessionFromContext(c echo.Context) *entity.Session {
	session, _ := c.Get(ContextKeySession).(*entity.Session)
	return session
}

var (
	errInvalidTokenFormat = echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
	errInvalidToken       = echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
)
