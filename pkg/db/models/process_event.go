package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// ProcessEvent is the single notification mechanism in the system; the
// fulfillment transaction appends reorder alerts here and the dashboard reads
// the pending ones back.
type ProcessEvent struct {
	ID              uuid.UUID                  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EventType       enums.ProcessEventType     `gorm:"column:event_type;not null"`
	Description     string                     `gorm:"column:description;not null"`
	Status          enums.ProcessEventStatus   `gorm:"column:status;not null;default:'pending'"`
	Severity        enums.ProcessEventSeverity `gorm:"column:severity;not null"`
	OrderID         *uuid.UUID                 `gorm:"column:order_id;type:uuid"`
	PurchaseOrderID *uuid.UUID                 `gorm:"column:purchase_order_id;type:uuid"`
	ProjectID       *uuid.UUID                 `gorm:"column:project_id;type:uuid"`
	ShipmentID      *uuid.UUID                 `gorm:"column:shipment_id;type:uuid"`
	ResolvedAt      *time.Time                 `gorm:"column:resolved_at"`
	CreatedAt       time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}
