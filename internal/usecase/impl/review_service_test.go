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

type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewReviewService(txManager, newDiscardLogger())

	return reviewServiceFixtures{service: service, txManager: txManager}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct(uuid.New())

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	reviewRepo.EXPECT().
		FindByProductAndUser(ctx, product.ID, buyer.ID).
		Return(nil, domainerrors.ErrReviewNotFound)
	reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, review *entity.Review) {
			review.ID = uuid.New()
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	review, err := fx.service.CreateReview(ctx, buyer.ID, usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    5,
		Comment:   "Great keyboard",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, buyer.ID, review.UserID)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct(uuid.New())

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	reviewRepo.EXPECT().
		FindByProductAndUser(ctx, product.ID, buyer.ID).
		Return(&entity.Review{ID: uuid.New(), ProductID: product.ID, UserID: buyer.ID}, nil)

	expectTx(fx.txManager, ctx, factory)

	review, err := fx.service.CreateReview(ctx, buyer.ID, usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    4,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_CreateReview_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, domainerrors.ErrProductNotFound)

	expectTx(fx.txManager, ctx, factory)

	review, err := fx.service.CreateReview(ctx, uuid.New(), usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    3,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_ListByProduct_AverageRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	product := testProduct(uuid.New())
	product.Reviews = []*entity.Review{
		{ID: uuid.New(), Rating: 5},
		{ID: uuid.New(), Rating: 2},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	reviewRepo.EXPECT().
		ListByProduct(ctx, product.ID, mock.AnythingOfType("repository.Pagination")).
		Return(product.Reviews, int64(2), nil)

	expectTx(fx.txManager, ctx, factory)

	output, err := fx.service.ListByProduct(ctx, product.ID, usecase.ListQuery{})

	require.NoError(t, err)
	assert.InDelta(t, 3.5, output.AverageRating, 0.0001)
	assert.Equal(t, int64(2), output.Total)
}

func TestReviewService_UpdateReview_NotOwner(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	existing := &entity.Review{ID: uuid.New(), Rating: 4, UserID: uuid.New()}
	stranger := testBuyer()

	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	expectTx(fx.txManager, ctx, factory)

	rating := 1
	review, err := fx.service.UpdateReview(ctx, stranger, existing.ID, usecase.UpdateReviewInput{
		Rating: &rating,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestReviewService_DeleteReview_AdminMayDelete(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	existing := &entity.Review{ID: uuid.New(), Rating: 4, UserID: uuid.New()}
	admin := testAdmin()

	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	reviewRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	expectTx(fx.txManager, ctx, factory)

	err := fx.service.DeleteReview(ctx, admin, existing.ID)

	require.NoError(t, err)
}
