package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Output DTOs ---

// DashboardStats aggregates the figures shown on the admin dashboard. Every
// field is recomputed in full on each request.
type DashboardStats struct {
	TotalUsers      int64
	TotalProducts   int64
	TotalOrders     int64
	TotalCategories int64
	PendingProducts int64
	// WeeklyRevenue sums the total price of the recent orders below, which
	// cover the trailing seven days.
	WeeklyRevenue float64
	RecentOrders  []*entity.Order
	TopProducts   []*entity.Product
	UsersByRole   map[entity.Role]int64
}

// AdminUsecase defines the interface for the admin dashboard.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
