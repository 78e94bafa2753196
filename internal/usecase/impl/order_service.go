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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateOrder places an order against an approved product. The total price
// is computed from the product's current price, never taken from the client.
func (srv *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}

	order := &entity.Order{
		Quantity:  input.Quantity,
		Status:    entity.OrderStatusPending,
		ProductID: input.ProductID,
		BuyerID:   buyerID,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		product, err := factory.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if !product.IsApproved || !product.IsActive {
			return domainerrors.ErrProductNotFound
		}

		order.TotalPrice = product.Price * float64(input.Quantity)

		return factory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order placed", "orderID", order.ID, "buyerID", buyerID)

	return order, nil
}

// ListMine returns a page of the buyer's own orders.
func (srv *orderService) ListMine(ctx context.Context, buyerID uuid.UUID, input usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}
	filter.BuyerID = &buyerID

	return srv.list(ctx, filter)
}

// ListAll returns a page of every order.
func (srv *orderService) ListAll(ctx context.Context, input usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}

	return srv.list(ctx, filter)
}

// GetOrder returns an order visible to the actor: its buyer, the product's
// seller, or an administrator.
func (srv *orderService) GetOrder(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.OrderRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !srv.canView(actor, found) {
			return domainerrors.ErrNotResourceOwner
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateStatus advances an order through its lifecycle. Only the product's
// seller or an administrator may do so, and only along legal transitions.
func (srv *orderService) UpdateStatus(ctx context.Context, actor *entity.User, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid order status")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		sellerID := uuid.Nil
		if found.Product != nil {
			sellerID = found.Product.SellerID
		}
		if !isOwnerOrAdmin(actor, sellerID) {
			return domainerrors.ErrNotResourceOwner
		}

		if !found.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition
		}

		found.Status = status
		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order status updated", "orderID", id, "status", status)

	return order, nil
}

// CancelOrder cancels a pending order on behalf of its buyer.
func (srv *orderService) CancelOrder(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !isOwnerOrAdmin(actor, found.BuyerID) {
			return domainerrors.ErrNotResourceOwner
		}
		if found.Status != entity.OrderStatusPending {
			return domainerrors.ErrInvalidStatusTransition
		}

		found.Status = entity.OrderStatusCancelled
		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to cancel order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *orderService) canView(actor *entity.User, order *entity.Order) bool {
	if isOwnerOrAdmin(actor, order.BuyerID) {
		return true
	}

	return order.Product != nil && actor != nil && actor.ID == order.Product.SellerID
}

func (srv *orderService) buildFilter(input usecase.ListOrdersInput) (repository.OrderFilter, error) {
	page, sort, err := pageAndSort(input.ListQuery, orderSortFields)
	if err != nil {
		return repository.OrderFilter{}, err
	}

	filter := repository.OrderFilter{
		Pagination: page,
		Sort:       sort,
	}
	if input.Status != "" {
		status := entity.OrderStatus(input.Status)
		if !status.IsValid() {
			return filter, errors.Wrap(domainerrors.ErrValidationFailed, "invalid status filter")
		}
		filter.Status = &status
	}

	return filter, nil
}

func (srv *orderService) list(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderListOutput, error) {
	var output *usecase.OrderListOutput

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders, total, err := factory.OrderRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		output = &usecase.OrderListOutput{
			Orders:   orders,
			PageInfo: usecase.NewPageInfo(filter.Pagination.Page, filter.Pagination.Limit, total),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
