package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the domain's MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new contact message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	messageM := model.ContactMessageModelFromEntity(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindByID loads a message with its sender and receiver.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var messageM model.ContactMessageModel
	err := repo.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		First(&messageM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.WithStack(err)
	}

	return messageM.ToEntity(), nil
}

// Update persists the read flag of an existing message.
func (repo *messageRepository) Update(ctx context.Context, message *entity.ContactMessage) error {
	result := repo.db.WithContext(ctx).Model(&model.ContactMessageModel{}).
		Where("id = ?", message.ID).
		Update("is_read", message.IsRead)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update message")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMessageNotFound
	}

	return nil
}

// Delete removes a message row.
func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ContactMessageModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMessageNotFound
	}

	return nil
}

// ListInbox returns a page of messages received by the user, newest first.
func (repo *messageRepository) ListInbox(ctx context.Context, userID uuid.UUID, page repository.Pagination) ([]*entity.ContactMessage, int64, error) {
	return repo.list(ctx, "receiver_id = ?", userID, "Sender", page)
}

// ListSent returns a page of messages sent by the user, newest first.
func (repo *messageRepository) ListSent(ctx context.Context, userID uuid.UUID, page repository.Pagination) ([]*entity.ContactMessage, int64, error) {
	return repo.list(ctx, "sender_id = ?", userID, "Receiver", page)
}

func (repo *messageRepository) list(ctx context.Context, where string, id uuid.UUID, preload string, page repository.Pagination) ([]*entity.ContactMessage, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ContactMessageModel{}).Where(where, id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var messageMs []model.ContactMessageModel
	err := query.
		Preload(preload).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&messageMs).Error
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	messages := make([]*entity.ContactMessage, 0, len(messageMs))
	for i := range messageMs {
		messages = append(messages, messageMs[i].ToEntity())
	}

	return messages, total, nil
}
