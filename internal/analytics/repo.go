package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const salesByProductQuery = `
SELECT p.id AS product_id,
       p.sku,
       p.name AS product_name,
       p.category,
       SUM(oi.quantity) AS quantity_sold,
       SUM(oi.total_price) AS total_sales
FROM order_items oi
JOIN products p ON oi.product_id = p.id
JOIN orders o ON oi.order_id = o.id
WHERE o.order_date BETWEEN ? AND ?
  AND o.status != 'cancelled'
GROUP BY p.id, p.sku, p.name, p.category
ORDER BY total_sales DESC
`

const salesByCustomerQuery = `
SELECT c.id AS customer_id,
       c.name AS customer_name,
       COUNT(o.id) AS order_count,
       SUM(o.total_amount) AS total_sales
FROM orders o
JOIN customers c ON o.customer_id = c.id
WHERE o.order_date BETWEEN ? AND ?
  AND o.status != 'cancelled'
GROUP BY c.id, c.name
ORDER BY total_sales DESC
`

const inventoryTurnoverQuery = `
SELECT p.id AS product_id,
       p.sku,
       p.name AS product_name,
       p.category,
       p.stock_quantity AS current_stock,
       COALESCE(SUM(oi.quantity), 0) AS quantity_sold,
       CASE
         WHEN p.stock_quantity > 0 THEN COALESCE(SUM(oi.quantity), 0) * 1.0 / p.stock_quantity
         ELSE 0
       END AS turnover_ratio
FROM products p
LEFT JOIN order_items oi ON p.id = oi.product_id
  AND oi.order_id IN (
    SELECT o.id FROM orders o
    WHERE o.order_date BETWEEN ? AND ? AND o.status != 'cancelled'
  )
GROUP BY p.id, p.sku, p.name, p.category, p.stock_quantity
ORDER BY turnover_ratio DESC
`

const projectProfitabilityQuery = `
SELECT p.id AS project_id,
       p.project_code,
       p.name AS project_name,
       p.budget,
       COALESCE(SUM(CASE WHEN t.type = 'credit' THEN t.amount ELSE 0 END), 0) AS revenue,
       COALESCE(SUM(CASE WHEN t.type = 'debit' THEN t.amount ELSE 0 END), 0) AS expenses,
       COALESCE(SUM(CASE WHEN t.type = 'credit' THEN t.amount ELSE -t.amount END), 0) AS profit,
       CASE
         WHEN p.budget > 0 THEN COALESCE(SUM(CASE WHEN t.type = 'debit' THEN t.amount ELSE 0 END), 0) * 100.0 / p.budget
         ELSE 0
       END AS budget_utilization
FROM projects p
LEFT JOIN transactions t ON p.id = t.project_id
GROUP BY p.id, p.project_code, p.name, p.budget
ORDER BY profit DESC
`

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SalesByProduct(ctx context.Context, start, end time.Time) ([]SalesByProductRow, error) {
	var rows []SalesByProductRow
	if err := r.db.WithContext(ctx).Raw(salesByProductQuery, start, end).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) SalesByCustomer(ctx context.Context, start, end time.Time) ([]SalesByCustomerRow, error) {
	var rows []SalesByCustomerRow
	if err := r.db.WithContext(ctx).Raw(salesByCustomerQuery, start, end).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) InventoryTurnover(ctx context.Context, start, end time.Time) ([]InventoryTurnoverRow, error) {
	var rows []InventoryTurnoverRow
	if err := r.db.WithContext(ctx).Raw(inventoryTurnoverQuery, start, end).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ProjectProfitability(ctx context.Context) ([]ProjectProfitabilityRow, error) {
	var rows []ProjectProfitabilityRow
	if err := r.db.WithContext(ctx).Raw(projectProfitabilityQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
