package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendMessageInput defines the data required to send a contact message.
type SendMessageInput struct {
	ReceiverID uuid.UUID
	Subject    string
	Message    string
}

// --- Output DTOs ---

// MessageListOutput returns one page of contact messages.
type MessageListOutput struct {
	Messages []*entity.ContactMessage
	PageInfo
}

// MessageUsecase defines the interface for contact message operations.
type MessageUsecase interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, input SendMessageInput) (*entity.ContactMessage, error)
	ListInbox(ctx context.Context, userID uuid.UUID, query ListQuery) (*MessageListOutput, error)
	ListSent(ctx context.Context, userID uuid.UUID, query ListQuery) (*MessageListOutput, error)
	// GetMessage returns a message visible to the actor. Opening a message
	// addressed to the actor marks it read.
	GetMessage(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.ContactMessage, error)
	DeleteMessage(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
