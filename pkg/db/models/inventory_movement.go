package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// InventoryMovement is the append-only audit trail for stock changes.
// Quantity is signed: negative for outbound, positive for inbound.
type InventoryMovement struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID          `gorm:"column:product_id;type:uuid;not null"`
	Quantity     int                `gorm:"column:quantity;not null"`
	MovementType enums.MovementType `gorm:"column:movement_type;not null"`
	Reference    string             `gorm:"column:reference;not null"`
	MovementDate time.Time          `gorm:"column:movement_date;not null"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
