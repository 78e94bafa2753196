package handler

import (
	"strconv"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// paramUUID parses a UUID path parameter.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// bindListQuery reads the shared pagination/sorting query parameters.
// Out-of-range values fall back to defaults in the service layer.
func bindListQuery(c echo.Context) usecase.ListQuery {
	query := usecase.ListQuery{
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		query.Limit = limit
	}

	return query
}

// pagination converts usecase page info to the response envelope shape.
func pagination(info usecase.PageInfo) response.Pagination {
	return response.Pagination{
		Page:  info.Page,
		Limit: info.Limit,
		Total: info.Total,
		Pages: info.Pages,
	}
}
