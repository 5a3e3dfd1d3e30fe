package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryResult pairs the summary with the degraded marker so callers can tell
// fallback data from live aggregates.
type SummaryResult struct {
	Summary  *Summary
	Degraded bool
}

// Summary is the full dashboard payload. It is cached as a unit, so every
// field must round-trip through JSON.
type Summary struct {
	FinancialKPIs FinancialKPIs     `json:"financial_kpis"`
	ActiveOrders  int64             `json:"active_orders"`
	LowStockItems int64             `json:"low_stock_items"`
	SalesTrend    []SalesTrendPoint `json:"sales_trend"`
	Notifications []Notification    `json:"notifications"`
}

type FinancialKPIs struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	ProfitLoss    decimal.Decimal `json:"profit_loss"`
}

// SalesTrendPoint buckets orders by calendar month, YYYY-MM.
type SalesTrendPoint struct {
	Month      string          `json:"month"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int             `json:"order_count"`
}

type Notification struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// OrderSlice is the minimal order projection the trend needs.
type OrderSlice struct {
	OrderDate   time.Time       `gorm:"column:order_date"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount"`
}
