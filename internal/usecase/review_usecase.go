package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to review a product.
type CreateReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// UpdateReviewInput defines the review fields that may change. Nil pointers
// leave the corresponding field unchanged.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// --- Output DTOs ---

// ReviewListOutput returns one page of reviews together with the aggregate
// rating of the listed scope.
type ReviewListOutput struct {
	Reviews       []*entity.Review
	AverageRating float64
	PageInfo
}

// ReviewUsecase defines the interface for product review operations.
type ReviewUsecase interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, query ListQuery) (*ReviewListOutput, error)
	ListMine(ctx context.Context, userID uuid.UUID, query ListQuery) (*ReviewListOutput, error)
	CreateReview(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, actor *entity.User, id uuid.UUID, input UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
