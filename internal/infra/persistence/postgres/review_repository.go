package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain's ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review. The composite unique index on
// (product_id, user_id) catches concurrent double-submits.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := model.ReviewModelFromEntity(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review with its author.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		First(&reviewM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.WithStack(err)
	}

	return reviewM.ToEntity(), nil
}

// FindByProductAndUser retrieves the user's review of a product.
func (repo *reviewRepository) FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		First(&reviewM, "product_id = ? AND user_id = ?", productID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.WithStack(err)
	}

	return reviewM.ToEntity(), nil
}

// Update persists the mutable fields of an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := model.ReviewModelFromEntity(review)

	result := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Select("Rating", "Comment").
		Updates(reviewM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review row.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}

	return nil
}

// ListByProduct returns a page of a product's reviews, newest first.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID, page repository.Pagination) ([]*entity.Review, int64, error) {
	return repo.list(ctx, "product_id = ?", productID, "User", page)
}

// ListByUser returns a page of a user's reviews, newest first.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, page repository.Pagination) ([]*entity.Review, int64, error) {
	return repo.list(ctx, "user_id = ?", userID, "Product", page)
}

func (repo *reviewRepository) list(ctx context.Context, where string, id uuid.UUID, preload string, page repository.Pagination) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Where(where, id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var reviewMs []model.ReviewModel
	err := query.
		Preload(preload).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&reviewMs).Error
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for i := range reviewMs {
		reviews = append(reviews, reviewMs[i].ToEntity())
	}

	return reviews, total, nil
}
