package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository implements the domain's StatsRepository interface. Each
// method is a single query so the dashboard can fan them out concurrently.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	return repo.count(ctx, &model.UserModel{}, nil)
}

func (repo *statsRepository) CountProducts(ctx context.Context) (int64, error) {
	return repo.count(ctx, &model.ProductModel{}, nil)
}

func (repo *statsRepository) CountPendingProducts(ctx context.Context) (int64, error) {
	return repo.count(ctx, &model.ProductModel{}, map[string]any{"is_approved": false})
}

func (repo *statsRepository) CountOrders(ctx context.Context) (int64, error) {
	return repo.count(ctx, &model.OrderModel{}, nil)
}

func (repo *statsRepository) CountCategories(ctx context.Context) (int64, error) {
	return repo.count(ctx, &model.CategoryModel{}, nil)
}

// RecentOrders returns up to limit orders created since the cutoff, newest
// first, with product and buyer preloaded.
func (repo *statsRepository) RecentOrders(ctx context.Context, since time.Time, limit int) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Buyer").
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Limit(limit).
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, orderMs[i].ToEntity())
	}

	return orders, nil
}

// TopProductsByReviewCount returns up to limit products ordered by review
// count, with reviews, category and seller preloaded.
func (repo *statsRepository) TopProductsByReviewCount(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Reviews").
		Preload("Category").
		Preload("Seller").
		Order("(SELECT COUNT(*) FROM reviews WHERE reviews.product_id = products.id) DESC").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, productMs[i].ToEntity())
	}

	return products, nil
}

// CountUsersByRole groups user counts by role.
func (repo *statsRepository) CountUsersByRole(ctx context.Context) (map[entity.Role]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	counts := make(map[entity.Role]int64, len(rows))
	for _, row := range rows {
		counts[entity.Role(row.Role)] = row.Count
	}

	return counts, nil
}

func (repo *statsRepository) count(ctx context.Context, m any, where map[string]any) (int64, error) {
	query := repo.db.WithContext(ctx).Model(m)
	if where != nil {
		query = query.Where(where)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}
