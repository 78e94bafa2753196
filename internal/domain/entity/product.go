package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a seller's listing. New products always start unapproved and
// every edit resets the approval flag, so there is a single review queue.
type Product struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       float64
	Images      []string
	Stock       int
	CategoryID  uuid.UUID
	SellerID    uuid.UUID
	IsApproved  bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category
	Seller   *User
	Reviews  []*Review
}

// AverageRating computes the mean rating over the loaded review set.
// The value is derived at read time and never persisted.
func (p *Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}

	var sum int
	for _, review := range p.Reviews {
		sum += review.Rating
	}

	return float64(sum) / float64(len(p.Reviews))
}

// ReviewCount returns the number of loaded reviews.
func (p *Product) ReviewCount() int {
	return len(p.Reviews)
}
