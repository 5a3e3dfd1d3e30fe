package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog row. StockQuantity is only ever mutated through the
// guarded decrement in the sales fulfillment transaction or an inbound
// movement; it should never go negative.
type Product struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU             string          `gorm:"column:sku;not null;uniqueIndex"`
	Name            string          `gorm:"column:name;not null"`
	Description     *string         `gorm:"column:description"`
	Category        string          `gorm:"column:category;not null"`
	UnitPrice       decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	StockQuantity   int             `gorm:"column:stock_quantity;not null;default:0"`
	ReorderLevel    int             `gorm:"column:reorder_level;not null;default:0"`
	ReorderQuantity int             `gorm:"column:reorder_quantity;not null;default:0"`
	LeadTimeDays    int             `gorm:"column:lead_time_days;not null;default:0"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
