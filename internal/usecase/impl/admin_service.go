package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardRevenueWindow   = 7 * 24 * time.Hour
	dashboardRecentOrdersMax = 10
	dashboardTopProductsMax  = 5
)

// adminService implements the AdminUsecase interface. The dashboard reads
// independent aggregates, so it queries the stats repository directly and
// fans the queries out instead of serializing them through a transaction.
type adminService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	statsRepo repository.StatsRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Dashboard assembles the admin dashboard figures. All aggregates are
// fetched concurrently and recomputed in full on every call.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		stats.TotalUsers, err = srv.statsRepo.CountUsers(groupCtx)

		return errors.Wrap(err, "failed to count users")
	})
	group.Go(func() (err error) {
		stats.TotalProducts, err = srv.statsRepo.CountProducts(groupCtx)

		return errors.Wrap(err, "failed to count products")
	})
	group.Go(func() (err error) {
		stats.TotalOrders, err = srv.statsRepo.CountOrders(groupCtx)

		return errors.Wrap(err, "failed to count orders")
	})
	group.Go(func() (err error) {
		stats.TotalCategories, err = srv.statsRepo.CountCategories(groupCtx)

		return errors.Wrap(err, "failed to count categories")
	})
	group.Go(func() (err error) {
		stats.PendingProducts, err = srv.statsRepo.CountPendingProducts(groupCtx)

		return errors.Wrap(err, "failed to count pending products")
	})
	group.Go(func() (err error) {
		since := time.Now().Add(-dashboardRevenueWindow)
		stats.RecentOrders, err = srv.statsRepo.RecentOrders(groupCtx, since, dashboardRecentOrdersMax)

		return errors.Wrap(err, "failed to load recent orders")
	})
	group.Go(func() (err error) {
		stats.TopProducts, err = srv.statsRepo.TopProductsByReviewCount(groupCtx, dashboardTopProductsMax)

		return errors.Wrap(err, "failed to load top products")
	})
	group.Go(func() (err error) {
		stats.UsersByRole, err = srv.statsRepo.CountUsersByRole(groupCtx)

		return errors.Wrap(err, "failed to count users by role")
	})

	if err := group.Wait(); err != nil {
		srv.logger.Error("Dashboard aggregation failed", "error", err)

		return nil, err
	}

	for _, order := range stats.RecentOrders {
		stats.WeeklyRevenue += order.TotalPrice
	}

	return stats, nil
}
