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

type messageServiceFixtures struct {
	service   usecase.MessageUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewMessageService(txManager, newDiscardLogger())

	return messageServiceFixtures{service: service, txManager: txManager}
}

func testMessage(senderID, receiverID uuid.UUID) *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Subject:    "Shipping question",
		Message:    "When does my order ship?",
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := testBuyer()
	receiver := testSeller()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().MessageRepo().Return(messageRepo)

	userRepo.EXPECT().FindByID(ctx, receiver.ID).Return(receiver, nil)
	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Run(func(_ context.Context, message *entity.ContactMessage) {
			message.ID = uuid.New()
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	message, err := fx.service.SendMessage(ctx, sender.ID, usecase.SendMessageInput{
		ReceiverID: receiver.ID,
		Subject:    "Shipping question",
		Message:    "When does my order ship?",
	})

	require.NoError(t, err)
	assert.Equal(t, sender.ID, message.SenderID)
	assert.False(t, message.IsRead)
}

func TestMessageService_SendMessage_ToSelf(t *testing.T) {
	fx := createTestMessageService(t)

	senderID := uuid.New()

	message, err := fx.service.SendMessage(context.Background(), senderID, usecase.SendMessageInput{
		ReceiverID: senderID,
		Subject:    "Hello",
		Message:    "Myself",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SendMessage_UnknownReceiver(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().
		FindByID(ctx, receiverID).
		Return(nil, domainerrors.ErrUserNotFound)

	expectTx(fx.txManager, ctx, factory)

	message, err := fx.service.SendMessage(ctx, uuid.New(), usecase.SendMessageInput{
		ReceiverID: receiverID,
		Subject:    "Hello",
		Message:    "Anyone there?",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessageService_GetMessage_ReceiverMarksRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	receiver := testSeller()
	message := testMessage(uuid.New(), receiver.ID)

	factory := mockRepo.NewMockRepositoryFactory(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	factory.EXPECT().MessageRepo().Return(messageRepo)

	messageRepo.EXPECT().FindByID(ctx, message.ID).Return(message, nil)
	messageRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Run(func(_ context.Context, updated *entity.ContactMessage) {
			assert.True(t, updated.IsRead)
		}).
		Return(nil)

	expectTx(fx.txManager, ctx, factory)

	found, err := fx.service.GetMessage(ctx, receiver, message.ID)

	require.NoError(t, err)
	assert.True(t, found.IsRead)
}

func TestMessageService_GetMessage_SenderDoesNotMarkRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := testBuyer()
	message := testMessage(sender.ID, uuid.New())

	factory := mockRepo.NewMockRepositoryFactory(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	factory.EXPECT().MessageRepo().Return(messageRepo)

	messageRepo.EXPECT().FindByID(ctx, message.ID).Return(message, nil)

	expectTx(fx.txManager, ctx, factory)

	found, err := fx.service.GetMessage(ctx, sender, message.ID)

	require.NoError(t, err)
	assert.False(t, found.IsRead)
}

func TestMessageService_GetMessage_StrangerForbidden(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	message := testMessage(uuid.New(), uuid.New())
	stranger := testBuyer()

	factory := mockRepo.NewMockRepositoryFactory(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	factory.EXPECT().MessageRepo().Return(messageRepo)

	messageRepo.EXPECT().FindByID(ctx, message.ID).Return(message, nil)

	expectTx(fx.txManager, ctx, factory)

	found, err := fx.service.GetMessage(ctx, stranger, message.ID)

	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}
