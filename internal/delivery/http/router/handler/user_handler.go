package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account administration handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// ListUsers returns a page of accounts, filtered by role and search term.
func (h *UserHandler) ListUsers(c echo.Context) error {
	output, err := h.uc.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Role:      c.QueryParam("role"),
		Search:    c.QueryParam("search"),
		ListQuery: bindListQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewUserViews(output.Users), pagination(output.PageInfo))
}

// GetUser returns an account with its activity counts, and full statistics
// for the owner or an administrator.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	viewer := deliverycontext.CurrentUser(c)

	output, err := h.uc.GetUser(c.Request().Context(), viewer, id)
	if err != nil {
		return errors.WithStack(err)
	}

	data := echo.Map{"user": NewUserViewWithCounts(output.User)}
	if output.Stats != nil {
		data["stats"] = NewUserStatsView(output.Stats)
	}

	return response.Success(c, http.StatusOK, data, "")
}

// GetStats returns the authenticated account's own statistics.
func (h *UserHandler) GetStats(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)

	output, err := h.uc.GetUser(c.Request().Context(), user, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewUserStatsView(output.Stats), "")
}

type updateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	Address   *string `json:"address" validate:"omitempty,max=500"`
	Role      *string `json:"role" validate:"omitempty,oneof=ADMIN SELLER BUYER"`
	IsActive  *bool   `json:"isActive"`
}

// UpdateUser applies administrative changes to an account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewUserView(user), "User updated successfully")
}

// DeleteUser removes an account without dependent activity.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	if err := h.uc.DeleteUser(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// ToggleUserStatus flips the active flag of an account.
func (h *UserHandler) ToggleUserStatus(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	user, err := h.uc.ToggleUserStatus(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "User disabled successfully"
	if user.IsActive {
		message = "User enabled successfully"
	}

	return response.Success(c, http.StatusOK, NewUserView(user), message)
}
