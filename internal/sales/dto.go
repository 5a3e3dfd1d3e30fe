package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

// OrderFilters describe the inputs supported by the orders list.
type OrderFilters struct {
	Status     *enums.OrderStatus
	CustomerID *uuid.UUID
}

// OrderRow is an order joined with its customer for list views.
type OrderRow struct {
	models.Order
	CustomerName string `json:"customer_name" gorm:"column:customer_name"`
}

// OrderDetail is the full order payload returned after reads and writes.
type OrderDetail struct {
	models.Order
	CustomerName string `json:"customer_name"`
}

// OrderItemInput captures one requested line when placing an order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
}

// CreateOrderInput captures the fields accepted when placing an order.
type CreateOrderInput struct {
	OrderNumber  string
	CustomerID   uuid.UUID
	OrderDate    *time.Time
	RequiredDate *time.Time
	Status       *enums.OrderStatus
	Items        []OrderItemInput
}
