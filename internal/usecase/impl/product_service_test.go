package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service   usecase.ProductUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProductService(txManager, newDiscardLogger())

	return productServiceFixtures{service: service, txManager: txManager}
}

func TestProductService_CreateProduct_StartsUnapproved(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := testSeller()
	categoryID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Electronics"}, nil)
	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	product, err := fx.service.CreateProduct(ctx, seller.ID, usecase.CreateProductInput{
		Title:      "Mechanical Keyboard",
		Price:      129.99,
		Stock:      10,
		CategoryID: categoryID,
	})

	require.NoError(t, err)
	assert.False(t, product.IsApproved)
	assert.True(t, product.IsActive)
	assert.Equal(t, seller.ID, product.SellerID)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(categoryRepo)

	categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(nil, domainerrors.ErrCategoryNotFound)

	expectTx(fx.txManager, ctx, factory)

	product, err := fx.service.CreateProduct(ctx, uuid.New(), usecase.CreateProductInput{
		Title:      "Mechanical Keyboard",
		Price:      129.99,
		CategoryID: categoryID,
	})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestProductService_UpdateProduct_ResetsApproval(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := testSeller()
	existing := testProduct(seller.ID)
	existing.IsApproved = true

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	newPrice := 99.99
	product, err := fx.service.UpdateProduct(ctx, seller, existing.ID, usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, newPrice, product.Price)
	// Every edit sends the listing back through moderation.
	assert.False(t, product.IsApproved)
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := testProduct(uuid.New())
	stranger := testSeller()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	expectTx(fx.txManager, ctx, factory)

	product, err := fx.service.UpdateProduct(ctx, stranger, existing.ID, usecase.UpdateProductInput{})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestProductService_UpdateProduct_AdminMayEdit(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := testProduct(uuid.New())
	admin := testAdmin()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	inactive := false
	product, err := fx.service.UpdateProduct(ctx, admin, existing.ID, usecase.UpdateProductInput{
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, product.IsActive)
}

func TestProductService_GetProduct_HidesPendingFromAnonymous(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	pending := testProduct(uuid.New())
	pending.IsApproved = false

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)

	expectTx(fx.txManager, ctx, factory)

	product, err := fx.service.GetProduct(ctx, nil, pending.ID)

	assert.Nil(t, product)
	// Pending listings read as missing rather than forbidden.
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_GetProduct_OwnerSeesPending(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := testSeller()
	pending := testProduct(seller.ID)
	pending.IsApproved = false

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)

	expectTx(fx.txManager, ctx, factory)

	product, err := fx.service.GetProduct(ctx, seller, pending.ID)

	require.NoError(t, err)
	assert.Equal(t, pending.ID, product.ID)
}

func TestProductService_ModerateProduct_Approve(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	pending := testProduct(uuid.New())
	pending.IsApproved = false

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	product, err := fx.service.ModerateProduct(ctx, pending.ID, true)

	require.NoError(t, err)
	assert.True(t, product.IsApproved)
}

func TestProductService_Browse_ForcesApprovedFilter(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ProductFilter")).
		RunAndReturn(func(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
			require.NotNil(t, filter.Approved)
			require.NotNil(t, filter.Active)
			assert.True(t, *filter.Approved)
			assert.True(t, *filter.Active)

			return nil, 0, nil
		})

	expectTx(fx.txManager, ctx, factory)

	output, err := fx.service.Browse(ctx, usecase.ListProductsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.Total)
}

func TestProductService_Browse_RejectsUnknownSortField(t *testing.T) {
	fx := createTestProductService(t)

	// No repository expectations: the query must be rejected before any
	// filter reaches the store.
	_, err := fx.service.Browse(context.Background(), usecase.ListProductsInput{
		ListQuery: usecase.ListQuery{SortBy: "passwordHash"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_ListAll_StatusFilter(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ProductFilter")).
		RunAndReturn(func(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
			require.NotNil(t, filter.Approved)
			assert.False(t, *filter.Approved)
			assert.Nil(t, filter.Active)

			return nil, 0, nil
		})

	expectTx(fx.txManager, ctx, factory)

	_, err := fx.service.ListAll(ctx, usecase.ListProductsInput{Status: "pending"})

	require.NoError(t, err)
}

func TestProductService_ListAll_InvalidStatus(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.ListAll(context.Background(), usecase.ListProductsInput{Status: "bogus"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
