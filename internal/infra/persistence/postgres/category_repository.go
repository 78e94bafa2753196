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

var categorySortFields = map[string]string{
	"createdAt": "categories.created_at",
	"updatedAt": "categories.updated_at",
	"name":      "categories.name",
}

// categoryRepository implements the domain's CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := model.CategoryModelFromEntity(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).First(&categoryM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return categoryM.ToEntity(), nil
}

// FindByName performs a case-insensitive lookup by name.
func (repo *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).First(&categoryM, "lower(name) = lower(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return categoryM.ToEntity(), nil
}

// Update persists the full state of an existing category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := model.CategoryModelFromEntity(category)

	result := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Select("Name", "Description", "Image", "IsActive").
		Updates(categoryM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category row.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryHasProducts
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

const approvedProductCountSubquery = "(SELECT COUNT(*) FROM products" +
	" WHERE products.category_id = categories.id AND products.is_approved = true) AS product_count"

// ListAll returns every active category ordered by name, each carrying its
// approved-product count.
func (repo *categoryRepository) ListAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Select("categories.*, " + approvedProductCountSubquery).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, categoryMs[i].ToEntity())
	}

	return categories, nil
}

// List returns a page of categories with total product counts, plus the
// unpaginated total.
func (repo *categoryRepository) List(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var categoryMs []model.CategoryModel
	err := query.
		Select("categories.*, (SELECT COUNT(*) FROM products WHERE products.category_id = categories.id) AS product_count").
		Order(orderClause(categorySortFields, filter.Sort, "categories.created_at DESC")).
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.Limit).
		Find(&categoryMs).Error
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, categoryMs[i].ToEntity())
	}

	return categories, total, nil
}

// CountProducts counts products referencing the category.
func (repo *categoryRepository) CountProducts(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("category_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}
