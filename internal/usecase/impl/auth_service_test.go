package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

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
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(txManager, hasher, tokenService, newDiscardLogger())

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:     "new@example.com",
		Password:  "Password123",
		FirstName: "New",
		LastName:  "Account",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, domainerrors.ErrUserNotFound)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	fx.tokenService.EXPECT().
		IssueToken(mock.AnythingOfType("*entity.User")).
		Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleBuyer, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.True(t, output.User.IsActive)
}

func TestAuthService_Register_RejectsAdminRole(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "sneaky@example.com",
		Password: "Password123",
		Role:     "ADMIN",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123",
		Role:     "SELLER",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	expectTx(fx.txManager, ctx, factory)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().
		ValidatePasswordStrength("weak").
		Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "weak",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testBuyer()
	user.PasswordHash = "hashed_password"

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	expectTx(fx.txManager, ctx, factory)

	fx.hasher.EXPECT().Check("Password123", "hashed_password").Return(true)
	fx.tokenService.EXPECT().IssueToken(user).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testBuyer()
	user.PasswordHash = "hashed_password"

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	expectTx(fx.txManager, ctx, factory)

	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, domainerrors.ErrUserNotFound)

	expectTx(fx.txManager, ctx, factory)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123",
	})

	assert.Nil(t, output)
	// An unknown email reads the same as a bad password.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testBuyer()
	user.PasswordHash = "hashed_password"
	user.IsActive = false

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	expectTx(fx.txManager, ctx, factory)

	fx.hasher.EXPECT().Check("Password123", "hashed_password").Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestAuthService_VerifyToken_DeletedUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		VerifyToken("token").
		Return(&service.Claims{UserID: userID}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

	expectTx(fx.txManager, ctx, factory)

	user, err := fx.service.VerifyToken(ctx, "token")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testBuyer()
	user.PasswordHash = "hashed_password"

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	expectTx(fx.txManager, ctx, factory)

	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	err := fx.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword123",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testBuyer()
	user.PasswordHash = "old_hash"

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "new_hash", updated.PasswordHash)
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	fx.hasher.EXPECT().Check("OldPassword123", "old_hash").Return(true)
	fx.hasher.EXPECT().Hash("NewPassword123").Return("new_hash", nil)

	err := fx.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{
		CurrentPassword: "OldPassword123",
		NewPassword:     "NewPassword123",
	})

	require.NoError(t, err)
}
