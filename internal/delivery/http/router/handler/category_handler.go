package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: logger}
}

// ListCategories returns every active category with approved-product counts.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewCategoryViews(categories), "")
}

// ListCategoriesAdmin returns a page of categories for administration.
func (h *CategoryHandler) ListCategoriesAdmin(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), usecase.ListCategoriesInput{
		Search:    c.QueryParam("search"),
		ListQuery: bindListQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewCategoryViews(output.Categories), pagination(output.PageInfo))
}

// GetCategory returns a single category.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewCategoryView(category), "")
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// CreateCategory creates a category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewCategoryView(category), "Category created successfully")
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Image       *string `json:"image" validate:"omitempty,url"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateCategory applies changes to a category.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewCategoryView(category), "Category updated successfully")
}

// DeleteCategory removes a category without products.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
