package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "herenow/internal/delivery/context"
	"herenow/internal/domain/entity"
	domainerrors "herenow/internal/domain/errors"
	"herenow/internal/domain/repository"
	"herenow/internal/domain/service"
	"herenow/internal/errors"
	"herenow/internal/usecase"
)

const minPasswordLength = 6

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new credential-based account and logs it in.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindByProviderUserID(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to check existing credentials")
		}

		newUser := &entity.User{
			Email: input.Email,
			Name:  input.Name,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during signup")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if createErr := authRepo.Create(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create authentication during signup")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", registeredUser.ID))

	return srv.issueTokens(ctx, registeredUser)
}

// Login authenticates an email/password pair and issues a token pair.
// Every failure path collapses into the same invalid-credentials error so
// the response never reveals whether the email is registered.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRecord, findErr := repoFactory.AuthRepo().FindByProviderUserID(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(findErr, "failed to find credentials")
		}

		if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		loadedUser, loadErr := repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to load user for login")
		}
		user = loadedUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	return srv.issueTokens(ctx, user)
}

// GoogleSignIn verifies a Google ID token and finds or creates the matching
// account.
func (srv *userService) GoogleSignIn(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google sign-in token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, findErr := authRepo.FindByProviderUserID(ctx, entity.ProviderTypeGoogle, oauthUser.ProviderUserID)
		if findErr == nil {
			loadedUser, loadErr := userRepo.FindByID(ctx, authRecord.UserID)
			if loadErr != nil {
				return errors.Wrap(loadErr, "failed to load user for google sign-in")
			}
			user = loadedUser

			return nil
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find google credentials")
		}

		// First sign-in with this Google account. Attach to an existing
		// user with the same email, or create a fresh one.
		existingUser, userErr := userRepo.FindByEmail(ctx, oauthUser.Email)
		if userErr != nil && !errors.Is(userErr, repository.ErrUserNotFound) {
			return errors.Wrap(userErr, "failed to find user by email for google sign-in")
		}
		if errors.Is(userErr, repository.ErrUserNotFound) {
			existingUser = &entity.User{
				Email: oauthUser.Email,
				Name:  oauthUser.Name,
			}
			if createErr := userRepo.Create(ctx, existingUser); createErr != nil {
				return errors.Wrap(createErr, "failed to create user for google sign-in")
			}
		}

		newAuth := &entity.Authentication{
			UserID:         existingUser.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: oauthUser.ProviderUserID,
		}
		if createErr := authRepo.Create(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to attach google credentials")
		}

		user = existingUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Google sign-in failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Google sign-in succeeded", slog.Any("userID", user.ID))

	return srv.issueTokens(ctx, user)
}

// Refresh rotates a valid refresh token into a new token pair. The old
// token is revoked; presenting it again fails.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	tokenHash := srv.tokenService.HashRefreshToken(refreshToken)

	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	if stored.Expired() {
		// Prune eagerly; the periodic sweep would get it anyway.
		if delErr := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); delErr != nil {
			srv.log(ctx).Warn("Failed to prune expired refresh token", slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return nil, errors.Wrap(err, "failed to revoke rotated refresh token")
	}

	return srv.issueTokens(ctx, user)
}

// Logout revokes a single refresh token. Revoking an unknown token is a
// no-op so logout stays idempotent.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := srv.tokenService.HashRefreshToken(refreshToken)

	err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// GetProfile loads the user behind a session.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return user, nil
}

// issueTokens generates a token pair and stores the refresh token's hash.
func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	pair, err := srv.tokenService.GenerateTokenPair(user.ID, user.Email, user.Name)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token pair", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	stored := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashRefreshToken(pair.RefreshToken),
		ExpiresAt: pair.RefreshExpiresAt,
	}
	if err := srv.refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		User:             user,
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
	}, nil
}
