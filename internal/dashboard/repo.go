package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

const revenueQuery = `
SELECT COALESCE(SUM(t.amount), 0)
FROM transactions t
JOIN accounts a ON t.account_id = a.id
WHERE t.type = 'credit' AND a.type = 'revenue'
`

const expensesQuery = `
SELECT COALESCE(SUM(t.amount), 0)
FROM transactions t
JOIN accounts a ON t.account_id = a.id
WHERE t.type = 'debit' AND a.type = 'expense'
`

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	return r.sumQuery(ctx, revenueQuery)
}

func (r *repository) Expenses(ctx context.Context) (decimal.Decimal, error) {
	return r.sumQuery(ctx, expensesQuery)
}

func (r *repository) sumQuery(ctx context.Context, query string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Raw(query).Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *repository) ActiveOrderCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status != ?", "cancelled").
		Count(&count).Error
	return count, err
}

func (r *repository) LowStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("stock_quantity <= reorder_level").
		Count(&count).Error
	return count, err
}

func (r *repository) OrdersSince(ctx context.Context, since time.Time) ([]OrderSlice, error) {
	var rows []OrderSlice
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("order_date", "total_amount").
		Where("order_date >= ?", since).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) PendingAlerts(ctx context.Context, limit int) ([]models.ProcessEvent, error) {
	var events []models.ProcessEvent
	err := r.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
