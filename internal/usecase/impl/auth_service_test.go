package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockRepo "taskhub/internal/mocks/repository"
	mockSvc "taskhub/internal/mocks/service"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// runTransaction makes the transaction manager mock execute the given
// function against a factory whose UserRepo is the supplied mock.
func runTransaction(fx authServiceFixtures, t *testing.T, txUserRepo *mockRepo.MockUserRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)

	fx.txManager.On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}
	userID := uuid.New()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)
	runTransaction(fx, t, txUserRepo)

	fx.tokenService.On("Issue", ctx, userID).Return("register-token", nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "register-token", output.Token)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)
	runTransaction(fx, t, txUserRepo)

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	// No token is ever issued for a failed registration.
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: userID, Email: "alice@example.com", PasswordHash: "hashed_password"}, nil)
	runTransaction(fx, t, txUserRepo)

	fx.hasher.On("Check", "password123", "hashed_password").Return(true)
	fx.tokenService.On("Issue", ctx, userID).Return("login-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, output.UserID)
	assert.Equal(t, "login-token", output.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)
	runTransaction(fx, t, txUserRepo)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email is incorrect", appErr.Details())

	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: userID, Email: "alice@example.com", PasswordHash: "hashed_password"}, nil)
	runTransaction(fx, t, txUserRepo)

	fx.hasher.On("Check", "wrongpw", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrongpw",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "password is incorrect", appErr.Details())

	// A failed login never issues a token.
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Revoke", ctx, "raw-token").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "raw-token"))
}

func TestAuthService_Logout_AlreadyRevoked(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Revoke", ctx, "raw-token").
		Return(errors.Wrap(repository.ErrTokenNotFound, "failed to revoke access token"))

	err := fx.service.Logout(ctx, "raw-token")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Name: "Alice", Email: "alice@example.com"}, nil)

	user, err := fx.service.CurrentUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestAuthService_CurrentUser_AccountGone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx, userID)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
