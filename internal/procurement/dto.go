package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

// PurchaseOrderFilters describe the inputs supported by the purchase order list.
type PurchaseOrderFilters struct {
	SupplierID *uuid.UUID
	Status     *enums.PurchaseOrderStatus
}

// PurchaseOrderRow is a purchase order joined with its supplier for list views.
type PurchaseOrderRow struct {
	models.PurchaseOrder
	SupplierName string `json:"supplier_name" gorm:"column:supplier_name"`
}

// PurchaseOrderDetail is the full purchase order payload returned after
// reads and writes.
type PurchaseOrderDetail struct {
	models.PurchaseOrder
	SupplierName string `json:"supplier_name"`
}

// PurchaseOrderItemInput captures one requested line on a purchase order.
type PurchaseOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreatePurchaseOrderInput captures the fields accepted when raising a
// purchase order.
type CreatePurchaseOrderInput struct {
	PONumber     string
	SupplierID   uuid.UUID
	OrderDate    *time.Time
	ExpectedDate *time.Time
	Items        []PurchaseOrderItemInput
}
