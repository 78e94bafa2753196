package model

import (
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ContactMessageModel mirrors the 'contact_messages' table.
type ContactMessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject    string    `gorm:"type:varchar(255);not null"`
	Message    string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Sender   *UserModel `gorm:"foreignKey:SenderID"`
	Receiver *UserModel `gorm:"foreignKey:ReceiverID"`
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// ToEntity converts the model into its domain representation.
func (m *ContactMessageModel) ToEntity() *entity.ContactMessage {
	msg := &entity.ContactMessage{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Subject:    m.Subject,
		Message:    m.Message,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Sender != nil {
		msg.Sender = m.Sender.ToEntity()
	}
	if m.Receiver != nil {
		msg.Receiver = m.Receiver.ToEntity()
	}
	return msg
}

// ContactMessageModelFromEntity converts a domain message into its storage representation.
func ContactMessageModelFromEntity(msg *entity.ContactMessage) *ContactMessageModel {
	return &ContactMessageModel{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Subject:    msg.Subject,
		Message:    msg.Message,
		IsRead:     msg.IsRead,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  msg.UpdatedAt,
	}
}
