package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	mockRepo "boutique/internal/mocks/repository"
	mockSvc "boutique/internal/mocks/service"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().EmailAvailable(ctx, input.Email).Return(true, nil)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			// No Create expectation: the insert must never happen.
			mockUserRepo.EXPECT().EmailAvailable(ctx, input.Email).Return(false, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Register_HashFailureSkipsTransaction(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().LoginTokenDuration().Return(30 * time.Minute)
	fx.tokenService.EXPECT().Issue(user.Email, 30*time.Minute).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "stored_hash"}
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrongpassword", "stored_hash").Return(false)

	_, wrongPassErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrongpassword",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)
	// No token must be issued on either failure path.
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAccountService_CurrentUser_TokenOutlivedAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "deleted@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentUser(ctx, "deleted@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_GetUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	found, err := fx.service.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, found)

	missing := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	_, err = fx.service.GetUser(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_ListUsers_NormalizesPagination(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	// Negative offset clamps to zero, zero limit falls back to the default.
	fx.userRepo.EXPECT().List(ctx, 0, defaultListLimit).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{Offset: -3, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, users, got)

	// Oversized limit clamps to the maximum.
	fx.userRepo.EXPECT().List(ctx, 10, maxListLimit).Return(nil, nil)

	_, err = fx.service.ListUsers(ctx, &usecase.ListUsersInput{Offset: 10, Limit: 10_000})
	require.NoError(t, err)
}
