package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"weighter/config"
	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	"weighter/internal/domain/service"
	mockRepo "weighter/internal/mocks/repository"
	mockSvc "weighter/internal/mocks/service"
	"weighter/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	cfg          *config.Config
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(txManager, hasher, tokenService, cfg, logger)

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

func testUser() *entity.User {
	lastLogin := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:             42,
		Email:          "test@example.com",
		Username:       "tester",
		PasswordDigest: "stored-digest",
		Role:           entity.RoleUser,
		IsActive:       true,
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		LastLoginAt:    &lastLogin,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Username: "newuser",
		Password: "Password123!",
	}
	expiresAt := time.Now().Add(time.Hour)

	fx.hasher.EXPECT().Hash(input.Password).Return("fresh-digest", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, input.Email, user.Email)
					assert.Equal(t, "fresh-digest", user.PasswordDigest)
					assert.Equal(t, entity.RoleUser, user.Role)
					assert.True(t, user.IsActive)
					user.ID = 7
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		Issue(service.TokenIdentity{UserID: 7, Username: "newuser", Email: "new@example.com", Role: entity.RoleUser}).
		Return("signed-token", expiresAt, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.UserID)
	assert.Equal(t, "newuser", output.Username)
	assert.Equal(t, entity.RoleUser, output.Role)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "somebody",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("fresh-digest", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "fresh@example.com",
		Username: "taken",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("fresh-digest", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateUsername)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser()
	input := &usecase.LoginInput{
		EmailOrUsername: "tester",
		Password:        "Password123!",
	}
	expiresAt := time.Now().Add(time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmailOrUsername(ctx, "tester").
				Return(user, nil)

			fx.hasher.EXPECT().Check(input.Password, user.PasswordDigest).Return(true)

			mockUserRepo.EXPECT().
				UpdateLastLogin(ctx, user.ID, mock.AnythingOfType("time.Time")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		Issue(service.TokenIdentity{UserID: 42, Username: "tester", Email: "test@example.com", Role: entity.RoleUser}).
		Return("signed-token", expiresAt, nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.UserID)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		EmailOrUsername: "ghost",
		Password:        "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmailOrUsername(ctx, "ghost").
				Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser()
	user.IsActive = false
	input := &usecase.LoginInput{
		EmailOrUsername: "tester",
		Password:        "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmailOrUsername(ctx, "tester").
				Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Same outcome as an unknown identifier, nothing leaks about the account.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser()
	previousLogin := *user.LastLoginAt
	input := &usecase.LoginInput{
		EmailOrUsername: "tester",
		Password:        "wrong-password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmailOrUsername(ctx, "tester").
				Return(user, nil)

			fx.hasher.EXPECT().Check(input.Password, user.PasswordDigest).Return(false)

			// No UpdateLastLogin expectation: a failed attempt must not touch it.
			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, previousLogin, *user.LastLoginAt)
}

func TestAuthService_Refresh_IssuesFromClaims(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.Claims{
		UserID:   42,
		Username: "tester",
		Email:    "test@example.com",
		Role:     entity.RoleUser,
	}
	expiresAt := time.Now().Add(time.Hour)

	// No txManager expectation: the default refresh never touches the store.
	fx.tokenService.EXPECT().
		Issue(claims.Identity()).
		Return("refreshed-token", expiresAt, nil)

	output, err := fx.service.Refresh(ctx, claims)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.UserID)
	assert.Equal(t, "refreshed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAuthService_Refresh_RecheckRefusesInactive(t *testing.T) {
	fx := createTestAuthService(t)
	fx.cfg.Auth.RecheckActiveOnRefresh = true

	ctx := context.Background()
	user := testUser()
	user.IsActive = false
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, claims)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	summary, err := fx.service.CurrentUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, summary.ID)
	assert.Equal(t, user.Username, summary.Username)
	assert.Equal(t, user.Email, summary.Email)
	assert.Equal(t, user.LastLoginAt, summary.LastLoginAt)
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	summary, err := fx.service.CurrentUser(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
