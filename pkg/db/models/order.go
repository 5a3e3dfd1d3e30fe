package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Order is a sales order header. Status changes go through the sales service,
// which restores stock on cancel and records a shipment on ship.
type Order struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber  string            `gorm:"column:order_number;not null"`
	CustomerID   uuid.UUID         `gorm:"column:customer_id;type:uuid;not null"`
	OrderDate    time.Time         `gorm:"column:order_date;not null"`
	RequiredDate *time.Time        `gorm:"column:required_date"`
	ShippedDate  *time.Time        `gorm:"column:shipped_date"`
	Status       enums.OrderStatus `gorm:"column:status;not null;default:'draft'"`
	TotalAmount  decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Items        []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
