// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// ListQuery carries the common pagination and sorting options accepted by
// list operations. Zero values fall back to the defaults applied by the
// service layer.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// PageInfo describes the pagination of a list result.
type PageInfo struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

// NewPageInfo computes the page count from the total row count. A
// non-positive limit is treated as one row per page.
func NewPageInfo(page, limit int, total int64) PageInfo {
	if limit < 1 {
		limit = 1
	}

	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return PageInfo{Page: page, Limit: limit, Total: total, Pages: pages}
}
