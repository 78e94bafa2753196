package repository

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ProductFilter narrows a product listing. Nil pointers mean "no predicate".
// Every predicate here is allow-listed; raw query strings never reach the
// query builder.
type ProductFilter struct {
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Approved   *bool
	Active     *bool
	Search     string // case-insensitive substring over title and description

	Pagination Pagination
	Sort       Sort
}

// ProductRepository persists Product entities.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// FindByID loads the product with its category, seller and reviews
	// (including each review's author). Returns ErrProductNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of products, each with category, seller and
	// reviews preloaded so derived ratings can be computed, plus the
	// unpaginated total.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)
}
