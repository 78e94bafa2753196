package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		pages int
	}{
		{name: "empty result", page: 1, limit: 10, total: 0, pages: 0},
		{name: "single partial page", page: 1, limit: 10, total: 7, pages: 1},
		{name: "exact multiple", page: 2, limit: 10, total: 30, pages: 3},
		{name: "remainder adds a page", page: 3, limit: 10, total: 31, pages: 4},
		{name: "limit one", page: 1, limit: 1, total: 5, pages: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.page, info.Page)
			assert.Equal(t, tt.limit, info.Limit)
			assert.Equal(t, tt.total, info.Total)
			assert.Equal(t, tt.pages, info.Pages)
		})
	}
}

func TestNewPageInfo_NonPositiveLimit(t *testing.T) {
	info := NewPageInfo(1, 0, 5)

	assert.Equal(t, 1, info.Limit)
	assert.Equal(t, 5, info.Pages)

	info = NewPageInfo(1, -3, 5)

	assert.Equal(t, 1, info.Limit)
	assert.Equal(t, 5, info.Pages)
}
