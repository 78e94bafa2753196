// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userSortFields is the allow-list of sortable columns. Anything outside it
// falls back to created_at.
var userSortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"email":     "email",
	"firstName": "first_name",
	"lastName":  "last_name",
}

// userRepository implements the domain's UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate generated values back to the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a user by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return userM.ToEntity(), nil
}

// FindByEmail retrieves a user by its exact email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return userM.ToEntity(), nil
}

// FindByIDWithCounts loads a user together with its dependent-row counts.
func (repo *userRepository) FindByIDWithCounts(ctx context.Context, id uuid.UUID, approvedOnly bool) (*entity.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	productQuery := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("seller_id = ?", id)
	if approvedOnly {
		productQuery = productQuery.Where("is_approved = ?", true)
	}
	if err := productQuery.Count(&user.ProductCount).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("user_id = ?", id).Count(&user.ReviewCount).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("buyer_id = ?", id).Count(&user.OrderCount).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	if err := repo.db.WithContext(ctx).Model(&model.ContactMessageModel{}).
		Where("sender_id = ? OR receiver_id = ?", id, id).Count(&user.MessageCount).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Update persists the full state of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("Email", "PasswordHash", "FirstName", "LastName", "Phone", "Address", "Avatar", "Role", "IsActive").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user row.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// List returns a page of users plus the unpaginated total.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var userMs []model.UserModel
	err := query.
		Order(orderClause(userSortFields, filter.Sort, "created_at DESC")).
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.Limit).
		Find(&userMs).Error
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, userMs[i].ToEntity())
	}

	return users, total, nil
}

// CountActivity returns the dependent-row counts for a user.
func (repo *userRepository) CountActivity(ctx context.Context, id uuid.UUID) (repository.ActivityCounts, error) {
	var counts repository.ActivityCounts

	steps := []struct {
		dest  *int64
		model any
		where string
		args  []any
	}{
		{&counts.Products, &model.ProductModel{}, "seller_id = ?", []any{id}},
		{&counts.Reviews, &model.ReviewModel{}, "user_id = ?", []any{id}},
		{&counts.Orders, &model.OrderModel{}, "buyer_id = ?", []any{id}},
		{&counts.SentMessages, &model.ContactMessageModel{}, "sender_id = ?", []any{id}},
		{&counts.ReceivedMessages, &model.ContactMessageModel{}, "receiver_id = ?", []any{id}},
	}
	for _, step := range steps {
		if err := repo.db.WithContext(ctx).Model(step.model).
			Where(step.where, step.args...).Count(step.dest).Error; err != nil {
			return repository.ActivityCounts{}, errors.WithStack(err)
		}
	}

	return counts, nil
}

// Stats aggregates the user's seller and reviewer activity.
func (repo *userRepository) Stats(ctx context.Context, id uuid.UUID) (*entity.UserStats, error) {
	stats := &entity.UserStats{}

	productCounts := []struct {
		dest  *int64
		where string
		args  []any
	}{
		{&stats.TotalProducts, "seller_id = ?", []any{id}},
		{&stats.ApprovedProducts, "seller_id = ? AND is_approved = ?", []any{id, true}},
		{&stats.PendingProducts, "seller_id = ? AND is_approved = ?", []any{id, false}},
		{&stats.InactiveProducts, "seller_id = ? AND is_active = ?", []any{id, false}},
	}
	for _, c := range productCounts {
		if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
			Where(c.where, c.args...).Count(c.dest).Error; err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("user_id = ?", id).Count(&stats.TotalReviews).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	if stats.TotalReviews > 0 {
		err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
			Where("user_id = ?", id).
			Select("COALESCE(AVG(rating), 0)").
			Scan(&stats.AverageRating).Error
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := repo.db.WithContext(ctx).Model(&model.ContactMessageModel{}).
		Where("sender_id = ? OR receiver_id = ?", id, id).
		Count(&stats.TotalMessages).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return stats, nil
}
