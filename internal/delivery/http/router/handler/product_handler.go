package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// ListProducts returns a page of the approved, active catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input, err := bindProductListInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Browse(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewProductViews(output.Products), pagination(output.PageInfo))
}

// SearchProducts searches the catalog by title and description.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	input, err := bindProductListInput(c)
	if err != nil {
		return err
	}
	input.Search = c.QueryParam("q")

	output, err := h.uc.Browse(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewProductViews(output.Products), pagination(output.PageInfo))
}

// ListProductsByCategory returns the approved catalog of one category.
func (h *ProductHandler) ListProductsByCategory(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	input, err := bindProductListInput(c)
	if err != nil {
		return err
	}
	input.CategoryID = &categoryID

	output, err := h.uc.Browse(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewProductViews(output.Products), pagination(output.PageInfo))
}

// ListMyProducts returns the authenticated seller's own products.
func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	input, err := bindProductListInput(c)
	if err != nil {
		return err
	}

	user := deliverycontext.CurrentUser(c)

	output, err := h.uc.ListMine(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewProductViews(output.Products), pagination(output.PageInfo))
}

// GetProduct returns a product with its reviews and rating aggregate.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	viewer := deliverycontext.CurrentUser(c)

	product, err := h.uc.GetProduct(c.Request().Context(), viewer, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewProductView(product, true), "")
}

type createProductRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Stock       int      `json:"stock" validate:"gte=0"`
	CategoryID  string   `json:"categoryId" validate:"required,uuid"`
}

// CreateProduct lists a new product for the authenticated seller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BindingError(c, "Invalid category id")
	}

	user := deliverycontext.CurrentUser(c)

	product, err := h.uc.CreateProduct(c.Request().Context(), user.ID, usecase.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Stock:       req.Stock,
		CategoryID:  categoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewProductView(product, false), "Product submitted for approval")
}

type updateProductRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,uuid"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateProduct applies changes to a product and resets its approval.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return response.BindingError(c, "Invalid category id")
		}
		input.CategoryID = &categoryID
	}

	actor := deliverycontext.CurrentUser(c)

	product, err := h.uc.UpdateProduct(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewProductView(product, false), "Product updated, pending approval")
}

// DeleteProduct removes a product owned by the actor.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	if err := h.uc.DeleteProduct(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

func bindProductListInput(c echo.Context) (usecase.ListProductsInput, error) {
	input := usecase.ListProductsInput{
		Search:    c.QueryParam("search"),
		Status:    c.QueryParam("status"),
		ListQuery: bindListQuery(c),
	}

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return input, domainerrors.ErrValidationFailed.WrapMessage("invalid category filter")
		}
		input.CategoryID = &categoryID
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, domainerrors.ErrValidationFailed.WrapMessage("invalid minPrice filter")
		}
		input.MinPrice = &minPrice
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, domainerrors.ErrValidationFailed.WrapMessage("invalid maxPrice filter")
		}
		input.MaxPrice = &maxPrice
	}

	return input, nil
}
