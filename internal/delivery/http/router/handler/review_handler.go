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

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// ListProductReviews returns a page of a product's reviews with the
// aggregate rating.
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := paramUUID(c, "productId")
	if err != nil {
		return err
	}

	output, err := h.uc.ListByProduct(c.Request().Context(), productID, bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Response{
		Success: true,
		Data: echo.Map{
			"reviews":       NewReviewViews(output.Reviews),
			"averageRating": output.AverageRating,
		},
		Pagination: &response.Pagination{
			Page:  output.Page,
			Limit: output.Limit,
			Total: output.Total,
			Pages: output.Pages,
		},
	})
}

// ListMyReviews returns a page of the authenticated account's reviews.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)

	output, err := h.uc.ListMine(c.Request().Context(), user.ID, bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewReviewViews(output.Reviews), pagination(output.PageInfo))
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

// CreateReview records the authenticated account's review of a product.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	productID, err := paramUUID(c, "productId")
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := deliverycontext.CurrentUser(c)

	review, err := h.uc.CreateReview(c.Request().Context(), user.ID, usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewReviewView(review), "Review created successfully")
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// UpdateReview applies changes to a review owned by the actor.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	review, err := h.uc.UpdateReview(c.Request().Context(), actor, id, usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewReviewView(review), "Review updated successfully")
}

// DeleteReview removes a review owned by the actor.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	if err := h.uc.DeleteReview(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
