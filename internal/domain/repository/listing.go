// Package repository defines the persistence contracts the use cases depend
// on, keeping the domain free of any concrete database technology.
package repository

// SortOrder is the direction of a sort, restricted to asc|desc.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination is a 1-indexed page request. The delivery layer clamps the size
// before it ever reaches a repository.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// Sort names a sortable field in domain terms. Concrete repositories map the
// field through a fixed allow-list; anything outside it falls back to the
// default ordering rather than reaching the query builder.
type Sort struct {
	Field string
	Order SortOrder
}
