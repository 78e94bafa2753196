package repository

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// UserFilter narrows a user listing. Zero values mean "no predicate".
type UserFilter struct {
	Role   *entity.Role
	Search string // case-insensitive substring over email, first and last name

	Pagination Pagination
	Sort       Sort
}

// ActivityCounts holds the dependent-row counts that block user deletion.
type ActivityCounts struct {
	Products         int64
	Reviews          int64
	Orders           int64
	SentMessages     int64
	ReceivedMessages int64
}

// HasAny reports whether the user has any dependent activity.
func (c ActivityCounts) HasAny() bool {
	return c.Products > 0 || c.Reviews > 0 || c.Orders > 0 ||
		c.SentMessages > 0 || c.ReceivedMessages > 0
}

// UserRepository persists User entities.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns the user or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail returns the user or ErrUserNotFound. The lookup is exact.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDWithCounts loads the user together with its dependent-row
	// counts. When approvedOnly is set, the product count includes approved
	// products only (the public profile view).
	FindByIDWithCounts(ctx context.Context, id uuid.UUID, approvedOnly bool) (*entity.User, error)

	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row. Callers check ActivityCounts first.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of users plus the unpaginated total.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// CountActivity returns the dependent-row counts for the user.
	CountActivity(ctx context.Context, id uuid.UUID) (ActivityCounts, error)

	// Stats aggregates the user's seller and reviewer activity.
	Stats(ctx context.Context, id uuid.UUID) (*entity.UserStats, error)
}
