package impl

import (
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageAndSort_Defaults(t *testing.T) {
	page, sort, err := pageAndSort(usecase.ListQuery{}, productSortFields)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageLimit, page.Limit)
	assert.Equal(t, repository.SortDesc, sort.Order)
}

func TestPageAndSort_ClampsLimit(t *testing.T) {
	page, _, err := pageAndSort(usecase.ListQuery{Page: 2, Limit: 500}, productSortFields)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, maxPageLimit, page.Limit)
}

func TestPageAndSort_NegativeValues(t *testing.T) {
	page, _, err := pageAndSort(usecase.ListQuery{Page: -3, Limit: -1}, productSortFields)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageLimit, page.Limit)
}

func TestPageAndSort_AscendingOrder(t *testing.T) {
	_, sort, err := pageAndSort(usecase.ListQuery{SortBy: "price", SortOrder: "asc"}, productSortFields)

	require.NoError(t, err)
	assert.Equal(t, "price", sort.Field)
	assert.Equal(t, repository.SortAsc, sort.Order)
}

func TestPageAndSort_RejectsUnknownSortField(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		sortable map[string]struct{}
	}{
		{name: "field outside allow-list", sortBy: "passwordHash", sortable: productSortFields},
		{name: "column name instead of field name", sortBy: "created_at", sortable: userSortFields},
		{name: "any field when nothing is sortable", sortBy: "createdAt", sortable: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pageAndSort(usecase.ListQuery{SortBy: tt.sortBy}, tt.sortable)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPageAndSort_RejectsUnknownSortOrder(t *testing.T) {
	_, _, err := pageAndSort(usecase.ListQuery{SortBy: "price", SortOrder: "sideways"}, productSortFields)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIsOwnerOrAdmin(t *testing.T) {
	ownerID := uuid.New()

	owner := testBuyer()
	owner.ID = ownerID
	admin := testAdmin()
	stranger := testBuyer()

	assert.True(t, isOwnerOrAdmin(owner, ownerID))
	assert.True(t, isOwnerOrAdmin(admin, ownerID))
	assert.False(t, isOwnerOrAdmin(stranger, ownerID))
	assert.False(t, isOwnerOrAdmin(nil, ownerID))
}
