package repository

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// OrderFilter narrows an order listing.
type OrderFilter struct {
	BuyerID *uuid.UUID
	Status  *entity.OrderStatus

	Pagination Pagination
	Sort       Sort
}

// OrderRepository persists Order entities.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads the order with its product and buyer.
	// Returns ErrOrderNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	Update(ctx context.Context, order *entity.Order) error

	// List returns a page of orders with product and buyer preloaded, plus
	// the unpaginated total.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)
}
