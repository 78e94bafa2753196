package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		txManager: txManager,
		logger:    logger,
	}
}

// SendMessage delivers a contact message to an existing account.
func (srv *messageService) SendMessage(ctx context.Context, senderID uuid.UUID, input usecase.SendMessageInput) (*entity.ContactMessage, error) {
	if senderID == input.ReceiverID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot message yourself")
	}

	message := &entity.ContactMessage{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Subject:    input.Subject,
		Message:    input.Message,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.UserRepo().FindByID(ctx, input.ReceiverID); err != nil {
			return err
		}

		return factory.MessageRepo().Create(ctx, message)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Message sent", "messageID", message.ID, "receiverID", input.ReceiverID)

	return message, nil
}

// ListInbox returns a page of messages received by the user.
func (srv *messageService) ListInbox(ctx context.Context, userID uuid.UUID, query usecase.ListQuery) (*usecase.MessageListOutput, error) {
	return srv.list(ctx, query, func(ctx context.Context, factory repository.RepositoryFactory, page repository.Pagination) ([]*entity.ContactMessage, int64, error) {
		return factory.MessageRepo().ListInbox(ctx, userID, page)
	})
}

// ListSent returns a page of messages sent by the user.
func (srv *messageService) ListSent(ctx context.Context, userID uuid.UUID, query usecase.ListQuery) (*usecase.MessageListOutput, error) {
	return srv.list(ctx, query, func(ctx context.Context, factory repository.RepositoryFactory, page repository.Pagination) ([]*entity.ContactMessage, int64, error) {
		return factory.MessageRepo().ListSent(ctx, userID, page)
	})
}

// GetMessage returns a message visible to the actor. Opening a message
// addressed to the actor marks it read.
func (srv *messageService) GetMessage(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.ContactMessage, error) {
	var message *entity.ContactMessage

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		messageRepo := factory.MessageRepo()

		found, err := messageRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !srv.canView(actor, found) {
			return domainerrors.ErrNotResourceOwner
		}

		if actor != nil && found.ReceiverID == actor.ID && !found.IsRead {
			found.IsRead = true
			if err := messageRepo.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to mark message read")
			}
		}
		message = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}

// DeleteMessage removes a message visible to the actor.
func (srv *messageService) DeleteMessage(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		messageRepo := factory.MessageRepo()

		found, err := messageRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !srv.canView(actor, found) {
			return domainerrors.ErrNotResourceOwner
		}

		return messageRepo.Delete(ctx, id)
	})
}

func (srv *messageService) canView(actor *entity.User, message *entity.ContactMessage) bool {
	if actor == nil {
		return false
	}

	return actor.Role == entity.RoleAdmin ||
		actor.ID == message.SenderID ||
		actor.ID == message.ReceiverID
}

func (srv *messageService) list(
	ctx context.Context,
	query usecase.ListQuery,
	fetch func(context.Context, repository.RepositoryFactory, repository.Pagination) ([]*entity.ContactMessage, int64, error),
) (*usecase.MessageListOutput, error) {
	page, _, err := pageAndSort(query, nil)
	if err != nil {
		return nil, err
	}

	var output *usecase.MessageListOutput

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		messages, total, err := fetch(ctx, factory, page)
		if err != nil {
			return errors.Wrap(err, "failed to list messages")
		}

		output = &usecase.MessageListOutput{
			Messages: messages,
			PageInfo: usecase.NewPageInfo(page.Page, page.Limit, total),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
