package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

type PurchaseOrder struct {
	ID           uuid.UUID                 `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PONumber     string                    `gorm:"column:po_number;not null;uniqueIndex"`
	SupplierID   uuid.UUID                 `gorm:"column:supplier_id;type:uuid;not null"`
	OrderDate    time.Time                 `gorm:"column:order_date;not null"`
	ExpectedDate *time.Time                `gorm:"column:expected_date"`
	ReceivedDate *time.Time                `gorm:"column:received_date"`
	Status       enums.PurchaseOrderStatus `gorm:"column:status;not null;default:'draft'"`
	TotalAmount  decimal.Decimal           `gorm:"column:total_amount;type:numeric(12,2);not null;default:0"`
	Items        []PurchaseOrderItem       `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}
