package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a direct message between two users.
type ContactMessage struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Subject    string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Sender   *User
	Receiver *User
}
