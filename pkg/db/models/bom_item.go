package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BOMItem links a manufactured product to one of its components with the
// quantity of the component consumed per unit of the parent.
type BOMItem struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID          uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	ComponentProductID uuid.UUID       `gorm:"column:component_product_id;type:uuid;not null"`
	Quantity           decimal.Decimal `gorm:"column:quantity;type:numeric(12,2);not null"`
	Unit               string          `gorm:"column:unit;not null;default:'pcs'"`
	Notes              *string         `gorm:"column:notes"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (BOMItem) TableName() string {
	return "bom_items"
}
