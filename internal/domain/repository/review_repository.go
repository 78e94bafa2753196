package repository

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ReviewRepository persists Review entities. The store carries a composite
// unique index on (product_id, user_id); Create surfaces a violation as
// ErrDuplicateReview so concurrent double-submits cannot slip through.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// FindByID returns the review with its author or ErrReviewNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProductAndUser returns the user's review of the product, or
	// ErrReviewNotFound.
	FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error)

	Update(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, id uuid.UUID) error

	// ListByProduct returns a page of the product's reviews, newest first,
	// each with its author, plus the unpaginated total.
	ListByProduct(ctx context.Context, productID uuid.UUID, page Pagination) ([]*entity.Review, int64, error)

	// ListByUser returns a page of the user's reviews, newest first, each
	// with its product, plus the unpaginated total.
	ListByUser(ctx context.Context, userID uuid.UUID, page Pagination) ([]*entity.Review, int64, error)
}
