package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type createOrderRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrder places an order for the authenticated buyer.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BindingError(c, "Invalid product id")
	}

	user := deliverycontext.CurrentUser(c)

	order, err := h.uc.CreateOrder(c.Request().Context(), user.ID, usecase.CreateOrderInput{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewOrderView(order), "Order placed successfully")
}

// ListMyOrders returns a page of the authenticated buyer's orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)

	output, err := h.uc.ListMine(c.Request().Context(), user.ID, usecase.ListOrdersInput{
		Status:    c.QueryParam("status"),
		ListQuery: bindListQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewOrderViews(output.Orders), pagination(output.PageInfo))
}

// ListAllOrders returns a page of every order.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	output, err := h.uc.ListAll(c.Request().Context(), usecase.ListOrdersInput{
		Status:    c.QueryParam("status"),
		ListQuery: bindListQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewOrderViews(output.Orders), pagination(output.PageInfo))
}

// GetOrder returns an order visible to the actor.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	order, err := h.uc.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewOrderView(order), "")
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
}

// UpdateOrderStatus advances an order through its lifecycle.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	order, err := h.uc.UpdateStatus(c.Request().Context(), actor, id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewOrderView(order), "Order status updated successfully")
}

// CancelOrder cancels a pending order on behalf of its buyer.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	order, err := h.uc.CancelOrder(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewOrderView(order), "Order cancelled successfully")
}
