package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

type Shipment struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShipmentNumber string               `gorm:"column:shipment_number;not null;uniqueIndex"`
	OrderID        uuid.UUID            `gorm:"column:order_id;type:uuid;not null"`
	Carrier        *string              `gorm:"column:carrier"`
	TrackingNumber *string              `gorm:"column:tracking_number"`
	ShippedDate    *time.Time           `gorm:"column:shipped_date"`
	DeliveredDate  *time.Time           `gorm:"column:delivered_date"`
	Status         enums.ShipmentStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
