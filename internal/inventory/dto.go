package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

// ProductFilters describe the inputs supported by the product list.
type ProductFilters struct {
	Category string
	LowStock bool
}

// MovementFilters describe the inputs supported by the movements list.
type MovementFilters struct {
	ProductID *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
}

// MovementRow is a stock movement joined with its product for list views.
type MovementRow struct {
	models.InventoryMovement
	ProductName string `json:"product_name" gorm:"column:product_name"`
	ProductSKU  string `json:"product_sku" gorm:"column:product_sku"`
}

// CreateProductInput captures the fields accepted when registering a product.
type CreateProductInput struct {
	SKU             string
	Name            string
	Description     *string
	Category        string
	UnitPrice       decimal.Decimal
	StockQuantity   int
	ReorderLevel    int
	ReorderQuantity int
	LeadTimeDays    int
}

// ProductList wraps products plus a marker for fallback data served while the
// primary store is unavailable.
type ProductList struct {
	Products []models.Product
	Degraded bool
}

// ConsumeInput describes one outgoing stock consumption tied to an order.
type ConsumeInput struct {
	ProductID uuid.UUID
	Quantity  int
	OrderID   uuid.UUID
	Reference string
}

// RestockInput describes one incoming stock restoration, from a cancelled
// order or a received purchase order.
type RestockInput struct {
	ProductID uuid.UUID
	Quantity  int
	Reference string
}
