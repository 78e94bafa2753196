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

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewOrderService(txManager, newDiscardLogger())

	return orderServiceFixtures{service: service, txManager: txManager}
}

func testOrder(buyerID uuid.UUID, product *entity.Product) *entity.Order {
	return &entity.Order{
		ID:         uuid.New(),
		Quantity:   2,
		TotalPrice: product.Price * 2,
		Status:     entity.OrderStatusPending,
		ProductID:  product.ID,
		BuyerID:    buyerID,
		Product:    product,
	}
}

func TestOrderService_CreateOrder_ComputesTotalPrice(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct(uuid.New())

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	order, err := fx.service.CreateOrder(ctx, buyer.ID, usecase.CreateOrderInput{
		ProductID: product.ID,
		Quantity:  3,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, product.Price*3, order.TotalPrice)
	assert.Equal(t, buyer.ID, order.BuyerID)
}

func TestOrderService_CreateOrder_ZeroQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), uuid.New(), usecase.CreateOrderInput{
		ProductID: uuid.New(),
		Quantity:  0,
	})

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_PendingProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := testProduct(uuid.New())
	product.IsApproved = false

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	expectTx(fx.txManager, ctx, factory)

	order, err := fx.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{
		ProductID: product.ID,
		Quantity:  1,
	})

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestOrderService_UpdateStatus_LegalTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	seller := testSeller()
	product := testProduct(seller.ID)
	order := testOrder(uuid.New(), product)

	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	updated, err := fx.service.UpdateStatus(ctx, seller, order.ID, entity.OrderStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_UpdateStatus_IllegalTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	seller := testSeller()
	product := testProduct(seller.ID)
	order := testOrder(uuid.New(), product)

	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	expectTx(fx.txManager, ctx, factory)

	// PENDING cannot jump straight to DELIVERED.
	updated, err := fx.service.UpdateStatus(ctx, seller, order.ID, entity.OrderStatusDelivered)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdateStatus_NotSeller(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := testProduct(uuid.New())
	order := testOrder(uuid.New(), product)
	stranger := testSeller()

	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	expectTx(fx.txManager, ctx, factory)

	updated, err := fx.service.UpdateStatus(ctx, stranger, order.ID, entity.OrderStatusConfirmed)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestOrderService_CancelOrder_OnlyPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct(uuid.New())
	order := testOrder(buyer.ID, product)
	order.Status = entity.OrderStatusShipped

	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	expectTx(fx.txManager, ctx, factory)

	cancelled, err := fx.service.CancelOrder(ctx, buyer, order.ID)

	assert.Nil(t, cancelled)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := testBuyer()
	product := testProduct(uuid.New())
	order := testOrder(buyer.ID, product)

	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	cancelled, err := fx.service.CancelOrder(ctx, buyer, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_GetOrder_SellerMayView(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	seller := testSeller()
	product := testProduct(seller.ID)
	order := testOrder(uuid.New(), product)

	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	expectTx(fx.txManager, ctx, factory)

	found, err := fx.service.GetOrder(ctx, seller, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestOrderService_GetOrder_StrangerForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := testProduct(uuid.New())
	order := testOrder(uuid.New(), product)
	stranger := testBuyer()

	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	expectTx(fx.txManager, ctx, factory)

	found, err := fx.service.GetOrder(ctx, stranger, order.ID)

	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}
