// Package impl contains the application-specific business rules implementations.
package impl

import (
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Sortable fields per resource. These mirror the column allow-lists in the
// postgres repositories; anything outside them is rejected before a filter
// is built. Reviews and messages use a fixed ordering and accept no sort
// field at all.
var (
	userSortFields     = sortFieldSet("createdAt", "updatedAt", "email", "firstName", "lastName")
	categorySortFields = sortFieldSet("createdAt", "updatedAt", "name")
	productSortFields  = sortFieldSet("createdAt", "updatedAt", "title", "price", "rating")
	orderSortFields    = sortFieldSet("createdAt", "updatedAt", "totalPrice", "status")
)

func sortFieldSet(fields ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}

	return set
}

// pageAndSort validates a raw list query and normalizes it into repository
// terms. The page is 1-indexed and the limit is clamped to maxPageLimit.
// A sort field outside the resource's allow-list, or a sort order other
// than asc/desc, fails validation instead of falling back to the default.
func pageAndSort(query usecase.ListQuery, sortable map[string]struct{}) (repository.Pagination, repository.Sort, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	pagination := repository.Pagination{Page: page, Limit: limit}

	if query.SortBy != "" {
		if _, ok := sortable[query.SortBy]; !ok {
			return pagination, repository.Sort{}, domainerrors.ErrValidationFailed.WrapMessage("unknown sort field " + query.SortBy)
		}
	}

	order := repository.SortDesc
	switch query.SortOrder {
	case "", "desc":
	case "asc":
		order = repository.SortAsc
	default:
		return pagination, repository.Sort{}, domainerrors.ErrValidationFailed.WrapMessage("invalid sort order " + query.SortOrder)
	}

	return pagination, repository.Sort{Field: query.SortBy, Order: order}, nil
}

// isOwnerOrAdmin reports whether the actor owns the resource or holds the
// admin role.
func isOwnerOrAdmin(actor *entity.User, ownerID uuid.UUID) bool {
	if actor == nil {
		return false
	}

	return actor.Role == entity.RoleAdmin || actor.ID == ownerID
}
