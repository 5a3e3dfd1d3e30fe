package mrp

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

// BOMRow is a bill-of-material line joined with both product sides.
type BOMRow struct {
	models.BOMItem
	ParentProductName string          `json:"parent_product_name" gorm:"column:parent_product_name"`
	ParentProductSKU  string          `json:"parent_product_sku" gorm:"column:parent_product_sku"`
	ComponentName     string          `json:"component_name" gorm:"column:component_name"`
	ComponentSKU      string          `json:"component_sku" gorm:"column:component_sku"`
	ComponentPrice    decimal.Decimal `json:"component_price" gorm:"column:component_price"`
	ComponentStock    int             `json:"component_stock" gorm:"column:component_stock"`
}

// CreateBOMItemInput captures the fields accepted when adding a BOM line.
type CreateBOMItemInput struct {
	ProductID          uuid.UUID
	ComponentProductID uuid.UUID
	Quantity           decimal.Decimal
	Unit               string
	Notes              *string
}
