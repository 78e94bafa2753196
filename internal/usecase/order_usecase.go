package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateOrderInput defines the data required to place an order. The total
// price is always computed server-side from the product's current price.
type CreateOrderInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// ListOrdersInput defines the filters accepted when listing orders.
type ListOrdersInput struct {
	Status string
	ListQuery
}

// --- Output DTOs ---

// OrderListOutput returns one page of orders.
type OrderListOutput struct {
	Orders []*entity.Order
	PageInfo
}

// OrderUsecase defines the interface for order operations. Buyers place and
// cancel orders; the product's seller or an administrator advances them.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, buyerID uuid.UUID, input CreateOrderInput) (*entity.Order, error)
	ListMine(ctx context.Context, buyerID uuid.UUID, input ListOrdersInput) (*OrderListOutput, error)
	ListAll(ctx context.Context, input ListOrdersInput) (*OrderListOutput, error)
	GetOrder(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, actor *entity.User, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	// CancelOrder cancels a pending order on behalf of its buyer.
	CancelOrder(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Order, error)
}
