package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Names are unique case-insensitively.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Image       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ProductCount is populated by queries that include it; for public
	// listings it counts approved products only.
	ProductCount int64
}
