package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListByProduct returns a page of the product's reviews with the product's
// aggregate rating.
func (srv *reviewService) ListByProduct(ctx context.Context, productID uuid.UUID, query usecase.ListQuery) (*usecase.ReviewListOutput, error) {
	page, _, err := pageAndSort(query, nil)
	if err != nil {
		return nil, err
	}

	var output *usecase.ReviewListOutput

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		product, err := factory.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		reviews, total, err := factory.ReviewRepo().ListByProduct(ctx, productID, page)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}

		output = &usecase.ReviewListOutput{
			Reviews:       reviews,
			AverageRating: product.AverageRating(),
			PageInfo:      usecase.NewPageInfo(page.Page, page.Limit, total),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ListMine returns a page of the user's own reviews.
func (srv *reviewService) ListMine(ctx context.Context, userID uuid.UUID, query usecase.ListQuery) (*usecase.ReviewListOutput, error) {
	page, _, err := pageAndSort(query, nil)
	if err != nil {
		return nil, err
	}

	var output *usecase.ReviewListOutput

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		reviews, total, err := factory.ReviewRepo().ListByUser(ctx, userID, page)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}

		output = &usecase.ReviewListOutput{
			Reviews:  reviews,
			PageInfo: usecase.NewPageInfo(page.Page, page.Limit, total),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// CreateReview records the user's review of a product, one per pair.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input usecase.CreateReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		Rating:    input.Rating,
		Comment:   input.Comment,
		ProductID: input.ProductID,
		UserID:    userID,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			return err
		}

		reviewRepo := factory.ReviewRepo()

		// Pre-check for a friendly conflict; the composite unique index
		// still backstops concurrent submissions.
		if _, err := reviewRepo.FindByProductAndUser(ctx, input.ProductID, userID); err == nil {
			return domainerrors.ErrDuplicateReview
		} else if !errors.Is(err, domainerrors.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check existing review")
		}

		return reviewRepo.Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Review created", "reviewID", review.ID, "productID", input.ProductID)

	return review, nil
}

// UpdateReview applies changes to a review owned by the actor.
func (srv *reviewService) UpdateReview(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		reviewRepo := factory.ReviewRepo()

		found, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !isOwnerOrAdmin(actor, found.UserID) {
			return domainerrors.ErrNotResourceOwner
		}

		if input.Rating != nil {
			found.Rating = *input.Rating
		}
		if input.Comment != nil {
			found.Comment = *input.Comment
		}

		if err := reviewRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes a review owned by the actor.
func (srv *reviewService) DeleteReview(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		reviewRepo := factory.ReviewRepo()

		found, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !isOwnerOrAdmin(actor, found.UserID) {
			return domainerrors.ErrNotResourceOwner
		}

		return reviewRepo.Delete(ctx, id)
	})
}
