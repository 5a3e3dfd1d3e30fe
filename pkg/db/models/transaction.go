package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Transaction is one ledger entry. Credits increase the referenced account's
// balance, debits decrease it.
type Transaction struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TransactionDate time.Time             `gorm:"column:transaction_date;not null"`
	Amount          decimal.Decimal       `gorm:"column:amount;type:numeric(12,2);not null"`
	Description     string                `gorm:"column:description;not null"`
	Type            enums.TransactionType `gorm:"column:type;not null"`
	AccountID       uuid.UUID             `gorm:"column:account_id;type:uuid;not null"`
	OrderID         *uuid.UUID            `gorm:"column:order_id;type:uuid"`
	ProjectID       *uuid.UUID            `gorm:"column:project_id;type:uuid"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
