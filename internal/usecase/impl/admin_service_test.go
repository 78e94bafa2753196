package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Dashboard_Success(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	service := NewAdminService(statsRepo, newDiscardLogger())

	ctx := context.Background()
	recentOrders := []*entity.Order{
		{ID: uuid.New(), TotalPrice: 100.50},
		{ID: uuid.New(), TotalPrice: 49.50},
	}
	topProducts := []*entity.Product{
		{ID: uuid.New(), Title: "Mechanical Keyboard"},
	}

	statsRepo.EXPECT().CountUsers(mock.Anything).Return(int64(42), nil)
	statsRepo.EXPECT().CountProducts(mock.Anything).Return(int64(17), nil)
	statsRepo.EXPECT().CountPendingProducts(mock.Anything).Return(int64(3), nil)
	statsRepo.EXPECT().CountOrders(mock.Anything).Return(int64(9), nil)
	statsRepo.EXPECT().CountCategories(mock.Anything).Return(int64(5), nil)
	statsRepo.EXPECT().
		RecentOrders(mock.Anything, mock.AnythingOfType("time.Time"), 10).
		Run(func(_ context.Context, since time.Time, _ int) {
			// The revenue window trails seven days behind now.
			assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), since, time.Minute)
		}).
		Return(recentOrders, nil)
	statsRepo.EXPECT().
		TopProductsByReviewCount(mock.Anything, 5).
		Return(topProducts, nil)
	statsRepo.EXPECT().
		CountUsersByRole(mock.Anything).
		Return(map[entity.Role]int64{entity.RoleBuyer: 30, entity.RoleSeller: 11, entity.RoleAdmin: 1}, nil)

	stats, err := service.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.PendingProducts)
	assert.InDelta(t, 150.0, stats.WeeklyRevenue, 0.0001)
	assert.Len(t, stats.RecentOrders, 2)
	assert.Len(t, stats.TopProducts, 1)
	assert.Equal(t, int64(30), stats.UsersByRole[entity.RoleBuyer])
}

func TestAdminService_Dashboard_AggregateFailure(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	service := NewAdminService(statsRepo, newDiscardLogger())

	boom := errors.New("connection refused")

	statsRepo.EXPECT().CountUsers(mock.Anything).Return(int64(0), boom).Maybe()
	statsRepo.EXPECT().CountProducts(mock.Anything).Return(int64(0), nil).Maybe()
	statsRepo.EXPECT().CountPendingProducts(mock.Anything).Return(int64(0), nil).Maybe()
	statsRepo.EXPECT().CountOrders(mock.Anything).Return(int64(0), nil).Maybe()
	statsRepo.EXPECT().CountCategories(mock.Anything).Return(int64(0), nil).Maybe()
	statsRepo.EXPECT().
		RecentOrders(mock.Anything, mock.AnythingOfType("time.Time"), 10).
		Return(nil, nil).Maybe()
	statsRepo.EXPECT().TopProductsByReviewCount(mock.Anything, 5).Return(nil, nil).Maybe()
	statsRepo.EXPECT().CountUsersByRole(mock.Anything).Return(nil, nil).Maybe()

	stats, err := service.Dashboard(context.Background())

	assert.Nil(t, stats)
	require.Error(t, err)
}
