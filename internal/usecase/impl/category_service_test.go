package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service   usecase.CategoryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCategoryService(txManager, newDiscardLogger())

	return categoryServiceFixtures{service: service, txManager: txManager}
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)

	categoryRepo.EXPECT().
		FindByName(ctx, "Electronics").
		Return(nil, domainerrors.ErrCategoryNotFound)
	categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	category, err := fx.service.CreateCategory(ctx, usecase.CreateCategoryInput{
		Name:        "Electronics",
		Description: "Gadgets and devices",
	})

	require.NoError(t, err)
	assert.Equal(t, "Electronics", category.Name)
	assert.True(t, category.IsActive)
}

func TestCategoryService_CreateCategory_NameTaken(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)

	// The lookup is case-insensitive, so "electronics" collides.
	categoryRepo.EXPECT().
		FindByName(ctx, "electronics").
		Return(&entity.Category{ID: uuid.New(), Name: "Electronics"}, nil)

	expectTx(fx.txManager, ctx, factory)

	category, err := fx.service.CreateCategory(ctx, usecase.CreateCategoryInput{
		Name: "electronics",
	})

	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNameTaken))
}

func TestCategoryService_UpdateCategory_RenameConflict(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	existing := &entity.Category{ID: uuid.New(), Name: "Books", IsActive: true}
	other := &entity.Category{ID: uuid.New(), Name: "Electronics", IsActive: true}

	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)

	categoryRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	categoryRepo.EXPECT().FindByName(ctx, "Electronics").Return(other, nil)

	expectTx(fx.txManager, ctx, factory)

	newName := "Electronics"
	category, err := fx.service.UpdateCategory(ctx, existing.ID, usecase.UpdateCategoryInput{
		Name: &newName,
	})

	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNameTaken))
}

func TestCategoryService_DeleteCategory_HasProducts(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	existing := &entity.Category{ID: uuid.New(), Name: "Books", IsActive: true}

	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)

	categoryRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	categoryRepo.EXPECT().CountProducts(ctx, existing.ID).Return(int64(4), nil)

	expectTx(fx.txManager, ctx, factory)

	err := fx.service.DeleteCategory(ctx, existing.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryHasProducts))
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	existing := &entity.Category{ID: uuid.New(), Name: "Books", IsActive: true}

	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)

	categoryRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	categoryRepo.EXPECT().CountProducts(ctx, existing.ID).Return(int64(0), nil)
	categoryRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	expectTx(fx.txManager, ctx, factory)

	err := fx.service.DeleteCategory(ctx, existing.ID)

	require.NoError(t, err)
}
