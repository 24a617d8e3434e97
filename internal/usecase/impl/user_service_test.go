package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"herenow/internal/domain/entity"
	domainerrors "herenow/internal/domain/errors"
	"herenow/internal/domain/repository"
	"herenow/internal/domain/service"
	mockRepo "herenow/internal/mocks/repository"
	mockSvc "herenow/internal/mocks/service"
	"herenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	refreshTokenRepo  *mockRepo.MockRefreshTokenRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		RefreshTokenRepo:  refreshTokenRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Logger:            logger,
	})

	return userServiceFixtures{
		service:           svc,
		txManager:         txManager,
		userRepo:          userRepo,
		refreshTokenRepo:  refreshTokenRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
	}
}

// expectTokenIssue wires token generation and refresh token storage for a
// successful auth flow.
func (fx userServiceFixtures) expectTokenIssue(ctx context.Context) {
	pair := &service.TokenPair{
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		AccessExpiresAt:  time.Now().Add(15 * time.Minute),
		RefreshExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	fx.tokenService.EXPECT().
		GenerateTokenPair(mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(pair, nil)
	fx.tokenService.EXPECT().HashRefreshToken("refresh-token").Return("hashed-refresh-token")
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "hunter22",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().AuthRepo().Return(authRepo)

			authRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			authRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
					assert.Equal(t, input.Email, auth.ProviderUserID)
					assert.Equal(t, "hashed_password", auth.PasswordHash)
				}).
				Return(nil)

			return fn(factory)
		})

	fx.expectTokenIssue(ctx)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Signup_PasswordTooShort(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "12345",
	}

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	require.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Password should be at least 6 characters long.", appErr.Message())
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "hunter22",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().AuthRepo().Return(authRepo)

			authRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(factory)
		})

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	require.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "This email is already registered", appErr.Message())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "hunter22",
	}
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().AuthRepo().Return(authRepo)

			authRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)

			fx.hasher.EXPECT().Check(input.Password, "stored-hash").Return(true)

			userRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: input.Email}, nil)

			return fn(factory)
		})

	fx.expectTokenIssue(ctx)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong-password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().AuthRepo().Return(authRepo)

			authRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "stored-hash"}, nil)

			fx.hasher.EXPECT().Check(input.Password, "stored-hash").Return(false)

			return fn(factory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid login attempt", appErr.Message())
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "hunter22",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().AuthRepo().Return(authRepo)

			authRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			return fn(factory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GoogleSignIn_CreatesAccountOnFirstContact(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{
		ProviderUserID: "google-sub-123",
		Email:          "new@example.com",
		Name:           "New User",
	}

	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().AuthRepo().Return(authRepo)

			authRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeGoogle, oauthUser.ProviderUserID).
				Return(nil, repository.ErrAuthNotFound)

			userRepo.EXPECT().
				FindByEmail(ctx, oauthUser.Email).
				Return(nil, repository.ErrUserNotFound)

			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			authRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeGoogle, auth.Provider)
					assert.Equal(t, oauthUser.ProviderUserID, auth.ProviderUserID)
					assert.Empty(t, auth.PasswordHash)
				}).
				Return(nil)

			return fn(factory)
		})

	fx.expectTokenIssue(ctx)

	output, err := fx.service.GoogleSignIn(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, oauthUser.Email, output.User.Email)
}

func TestUserService_GoogleSignIn_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token signature mismatch"))

	output, err := fx.service.GoogleSignIn(ctx, "bad-token")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().HashRefreshToken("old-refresh-token").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "old-hash").Return(stored, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "test@example.com"}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, "old-hash").Return(nil)

	fx.expectTokenIssue(ctx)

	output, err := fx.service.Refresh(ctx, "old-refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Refresh_ExpiredTokenIsPruned(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.RefreshToken{
		UserID:    uuid.New(),
		TokenHash: "stale-hash",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	fx.tokenService.EXPECT().HashRefreshToken("stale-token").Return("stale-hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "stale-hash").Return(stored, nil)
	fx.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, "stale-hash").Return(nil)

	output, err := fx.service.Refresh(ctx, "stale-token")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashRefreshToken("unknown-token").Return("unknown-hash")
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "unknown-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, "unknown-token")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_IsIdempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashRefreshToken("gone-token").Return("gone-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, "gone-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "gone-token")

	require.NoError(t, err)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
