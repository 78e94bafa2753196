// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. The password hash never leaves the
// persistence and usecase layers; delivery-facing views omit it.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	Avatar       string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Dependent-row counts, populated by list/detail queries that need them.
	ProductCount int64
	ReviewCount  int64
	OrderCount   int64
	MessageCount int64
}

// UserStats aggregates a user's activity for the stats endpoint.
// Every value is recomputed from live rows on each request.
type UserStats struct {
	TotalProducts    int64
	ApprovedProducts int64
	PendingProducts  int64
	InactiveProducts int64
	TotalReviews     int64
	AverageRating    float64
	TotalMessages    int64
}
