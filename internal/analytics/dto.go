package analytics

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Report wraps a report payload together with the window it covers.
// Dates are echoed back in YYYY-MM-DD form.
type Report struct {
	Report    enums.ReportKind `json:"report"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Data      any              `json:"data"`
}

type SalesByProductRow struct {
	ProductID    uuid.UUID       `json:"product_id" gorm:"column:product_id"`
	SKU          string          `json:"sku" gorm:"column:sku"`
	ProductName  string          `json:"product_name" gorm:"column:product_name"`
	Category     string          `json:"category" gorm:"column:category"`
	QuantitySold int64           `json:"quantity_sold" gorm:"column:quantity_sold"`
	TotalSales   decimal.Decimal `json:"total_sales" gorm:"column:total_sales"`
}

type SalesByCustomerRow struct {
	CustomerID   uuid.UUID       `json:"customer_id" gorm:"column:customer_id"`
	CustomerName string          `json:"customer_name" gorm:"column:customer_name"`
	OrderCount   int64           `json:"order_count" gorm:"column:order_count"`
	TotalSales   decimal.Decimal `json:"total_sales" gorm:"column:total_sales"`
}

type InventoryTurnoverRow struct {
	ProductID     uuid.UUID       `json:"product_id" gorm:"column:product_id"`
	SKU           string          `json:"sku" gorm:"column:sku"`
	ProductName   string          `json:"product_name" gorm:"column:product_name"`
	Category      string          `json:"category" gorm:"column:category"`
	CurrentStock  int             `json:"current_stock" gorm:"column:current_stock"`
	QuantitySold  int64           `json:"quantity_sold" gorm:"column:quantity_sold"`
	TurnoverRatio decimal.Decimal `json:"turnover_ratio" gorm:"column:turnover_ratio"`
}

type ProjectProfitabilityRow struct {
	ProjectID         uuid.UUID       `json:"project_id" gorm:"column:project_id"`
	ProjectCode       string          `json:"project_code" gorm:"column:project_code"`
	ProjectName       string          `json:"project_name" gorm:"column:project_name"`
	Budget            decimal.Decimal `json:"budget" gorm:"column:budget"`
	Revenue           decimal.Decimal `json:"revenue" gorm:"column:revenue"`
	Expenses          decimal.Decimal `json:"expenses" gorm:"column:expenses"`
	Profit            decimal.Decimal `json:"profit" gorm:"column:profit"`
	BudgetUtilization decimal.Decimal `json:"budget_utilization" gorm:"column:budget_utilization"`
}
