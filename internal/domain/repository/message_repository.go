package repository

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// MessageRepository persists ContactMessage entities.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error

	// FindByID loads the message with sender and receiver.
	// Returns ErrMessageNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)

	Update(ctx context.Context, message *entity.ContactMessage) error

	Delete(ctx context.Context, id uuid.UUID) error

	// ListInbox returns a page of messages received by the user, newest
	// first, plus the unpaginated total.
	ListInbox(ctx context.Context, userID uuid.UUID, page Pagination) ([]*entity.ContactMessage, int64, error)

	// ListSent returns a page of messages sent by the user, newest first,
	// plus the unpaginated total.
	ListSent(ctx context.Context, userID uuid.UUID, page Pagination) ([]*entity.ContactMessage, int64, error)
}
