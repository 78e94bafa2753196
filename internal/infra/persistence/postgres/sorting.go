package postgres

import "bazaar/internal/domain/repository"

// orderClause maps a domain sort onto a SQL ORDER BY clause through the
// repository's allow-list. Sort fields are validated against the same
// allow-list in the service layer, so an unknown field here means the
// filter was built without a sort; it falls back to the default clause.
// Request input never reaches the query builder as a column name.
func orderClause(allowed map[string]string, sort repository.Sort, fallback string) string {
	column, ok := allowed[sort.Field]
	if !ok {
		return fallback
	}

	if sort.Order == repository.SortAsc {
		return column + " ASC"
	}

	return column + " DESC"
}
