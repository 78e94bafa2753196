package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a buyer's rating of a product. At most one review exists per
// (product, user) pair; the store enforces this with a composite unique index.
type Review struct {
	ID        uuid.UUID
	Rating    int
	Comment   string
	ProductID uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product
	User    *User
}
