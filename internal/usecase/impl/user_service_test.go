package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewUserService(txManager, newDiscardLogger())

	return userServiceFixtures{service: service, txManager: txManager}
}

func TestUserService_ListUsers_InvalidRoleFilter(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.ListUsers(context.Background(), usecase.ListUsersInput{
		Role: "SUPERUSER",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_GetUser_PublicViewerGetsApprovedCountsOnly(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seller := testSeller()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().
		FindByIDWithCounts(ctx, seller.ID, true).
		Return(seller, nil)

	expectTx(fx.txManager, ctx, factory)

	output, err := fx.service.GetUser(ctx, nil, seller.ID)

	require.NoError(t, err)
	assert.Equal(t, seller.ID, output.User.ID)
	assert.Nil(t, output.Stats)
}

func TestUserService_GetUser_SelfGetsFullStats(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seller := testSeller()
	stats := &entity.UserStats{TotalProducts: 3, ApprovedProducts: 2, PendingProducts: 1}

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().
		FindByIDWithCounts(ctx, seller.ID, false).
		Return(seller, nil)
	userRepo.EXPECT().Stats(ctx, seller.ID).Return(stats, nil)

	expectTx(fx.txManager, ctx, factory)

	output, err := fx.service.GetUser(ctx, seller, seller.ID)

	require.NoError(t, err)
	assert.Equal(t, stats, output.Stats)
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	fx := createTestUserService(t)

	admin := testAdmin()

	err := fx.service.DeleteUser(context.Background(), admin, admin.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrSelfDeletion))
}

func TestUserService_DeleteUser_HasActivity(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := testAdmin()
	target := testSeller()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	userRepo.EXPECT().
		CountActivity(ctx, target.ID).
		Return(repository.ActivityCounts{Products: 2}, nil)

	expectTx(fx.txManager, ctx, factory)

	err := fx.service.DeleteUser(ctx, admin, target.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserHasActivity))
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := testAdmin()
	target := testBuyer()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	userRepo.EXPECT().
		CountActivity(ctx, target.ID).
		Return(repository.ActivityCounts{}, nil)
	userRepo.EXPECT().Delete(ctx, target.ID).Return(nil)

	expectTx(fx.txManager, ctx, factory)

	err := fx.service.DeleteUser(ctx, admin, target.ID)

	require.NoError(t, err)
}

func TestUserService_ToggleUserStatus_FlipsFlag(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := testAdmin()
	target := testBuyer()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	user, err := fx.service.ToggleUserStatus(ctx, admin, target.ID)

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUserService_ToggleUserStatus_Self(t *testing.T) {
	fx := createTestUserService(t)

	admin := testAdmin()

	user, err := fx.service.ToggleUserStatus(context.Background(), admin, admin.ID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	target := testBuyer()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	expectTx(fx.txManager, ctx, factory)

	badRole := "SUPERUSER"
	user, err := fx.service.UpdateUser(ctx, target.ID, usecase.UpdateUserInput{
		Role: &badRole,
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
