package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// StatsRepository serves the admin dashboard's independent aggregates. Each
// method is a single count/aggregate so callers can fetch them concurrently.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountPendingProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)

	// RecentOrders returns up to limit orders created since the cutoff,
	// newest first, with product and buyer preloaded.
	RecentOrders(ctx context.Context, since time.Time, limit int) ([]*entity.Order, error)

	// TopProductsByReviewCount returns up to limit products ordered by the
	// number of reviews, each with reviews, category and seller preloaded.
	TopProductsByReviewCount(ctx context.Context, limit int) ([]*entity.Product, error)

	// CountUsersByRole groups user counts by role.
	CountUsersByRole(ctx context.Context) (map[entity.Role]int64, error)
}
