package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Image       string
}

// UpdateCategoryInput defines the category fields that may change. Nil
// pointers leave the corresponding field unchanged.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Image       *string
	IsActive    *bool
}

// ListCategoriesInput defines the filters accepted by the paginated
// administration listing.
type ListCategoriesInput struct {
	Search string
	ListQuery
}

// --- Output DTOs ---

// CategoryListOutput returns one page of categories.
type CategoryListOutput struct {
	Categories []*entity.Category
	PageInfo
}

// CategoryUsecase defines the interface for category operations.
type CategoryUsecase interface {
	// ListActive returns every active category ordered by name, with the
	// approved product count attached to each. It is the public listing.
	ListActive(ctx context.Context) ([]*entity.Category, error)
	List(ctx context.Context, input ListCategoriesInput) (*CategoryListOutput, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
