package repository

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// CategoryFilter narrows an admin category listing.
type CategoryFilter struct {
	Search string // case-insensitive substring over name and description

	Pagination Pagination
	Sort       Sort
}

// CategoryRepository persists Category entities.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error

	// FindByID returns the category or ErrCategoryNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName performs a case-insensitive name lookup, used for the
	// uniqueness pre-check. Returns ErrCategoryNotFound when no row matches.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category row. Callers check CountProducts first.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll returns every category ordered by name, each carrying its
	// approved-product count.
	ListAll(ctx context.Context) ([]*entity.Category, error)

	// List returns a page of categories with total product counts, plus the
	// unpaginated total.
	List(ctx context.Context, filter CategoryFilter) ([]*entity.Category, int64, error)

	// CountProducts counts products referencing the category.
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)
}
