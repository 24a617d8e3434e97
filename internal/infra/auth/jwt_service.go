package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"herenow/config"
	"herenow/internal/domain/service"
	"herenow/internal/errors"
)

const (
	defaultAccessTTL  = time.Minute * 15
	defaultRefreshTTL = time.Hour * 24 * 7
)

// jwtService implements TokenService. Access tokens are HS256 JWTs carrying
// the session identity; refresh tokens are opaque random strings stored
// server-side by their SHA-256 hash.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}, nil
}

// GenerateTokenPair creates a signed access token and a random refresh token.
func (s *jwtService) GenerateTokenPair(userID uuid.UUID, email, name string) (*service.TokenPair, error) {
	now := time.Now()
	accessExpiresAt := now.Add(s.accessTTL)
	refreshExpiresAt := now.Add(s.refreshTTL)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"name":  name,
		"iat":   now.Unix(),
		"exp":   accessExpiresAt.Unix(),
		"type":  "access",
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	refreshToken, err := generateOpaqueToken()
	if err != nil {
		return nil, errors.Wrap(err, "generate refresh token")
	}

	return &service.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// ValidateAccessToken parses and verifies an access token and extracts the claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid access token")
	}

	if tokenType, _ := mapClaims["type"].(string); tokenType != "access" {
		return nil, errors.New("not an access token")
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "parse subject claim")
	}

	email, _ := mapClaims["email"].(string)
	name, _ := mapClaims["name"].(string)

	return &service.Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
	}, nil
}

// HashRefreshToken derives the storage hash for a raw refresh token.
func (s *jwtService) HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
