package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Images      []string
	Stock       int
	CategoryID  uuid.UUID
}

// UpdateProductInput defines the product fields that may change. Nil
// pointers leave the corresponding field unchanged.
type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *float64
	Images      []string
	Stock       *int
	CategoryID  *uuid.UUID
	IsActive    *bool
}

// ListProductsInput defines the filters accepted when browsing products.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	// Status narrows moderation listings to "approved" or "pending".
	// Public browsing ignores it and always serves approved products.
	Status string
	ListQuery
}

// --- Output DTOs ---

// ProductListOutput returns one page of products.
type ProductListOutput struct {
	Products []*entity.Product
	PageInfo
}

// ProductUsecase defines the interface for product catalog operations.
// Browse and GetProduct serve anonymous traffic; the mutating operations
// enforce seller ownership, and the moderation ones are admin-only.
type ProductUsecase interface {
	// Browse lists approved, active products for the storefront.
	Browse(ctx context.Context, input ListProductsInput) (*ProductListOutput, error)
	// ListMine lists the authenticated seller's own products regardless of
	// approval state.
	ListMine(ctx context.Context, sellerID uuid.UUID, input ListProductsInput) (*ProductListOutput, error)
	// ListAll lists every product for moderation.
	ListAll(ctx context.Context, input ListProductsInput) (*ProductListOutput, error)
	GetProduct(ctx context.Context, viewer *entity.User, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, actor *entity.User, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor *entity.User, id uuid.UUID) error
	// ModerateProduct approves or rejects a pending product.
	ModerateProduct(ctx context.Context, id uuid.UUID, approved bool) (*entity.Product, error)
}
