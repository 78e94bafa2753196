package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrative handlers.
type AdminHandler struct {
	adminUC   usecase.AdminUsecase
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, productUC usecase.ProductUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{adminUC: adminUC, productUC: productUC, logger: logger}
}

// Dashboard returns the aggregated marketplace figures.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewDashboardView(stats), "")
}

// ListAllProducts lists every product regardless of approval state.
func (h *AdminHandler) ListAllProducts(c echo.Context) error {
	input, err := bindProductListInput(c)
	if err != nil {
		return err
	}

	output, err := h.productUC.ListAll(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewProductViews(output.Products), pagination(output.PageInfo))
}

type moderateProductRequest struct {
	IsApproved *bool  `json:"isApproved" validate:"required"`
	Reason     string `json:"reason" validate:"max=500"`
}

// ModerateProduct approves or rejects a pending product.
func (h *AdminHandler) ModerateProduct(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req moderateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid moderation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.ModerateProduct(c.Request().Context(), id, *req.IsApproved)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Product rejected"
	if product.IsApproved {
		message = "Product approved"
	}

	return response.Success(c, http.StatusOK, NewProductView(product, false), message)
}
