package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Account is a chart-of-accounts entry. Balance is maintained by the finance
// module whenever a ledger transaction posts against the account.
type Account struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AccountCode string            `gorm:"column:account_code;not null;uniqueIndex"`
	Name        string            `gorm:"column:name;not null"`
	Type        enums.AccountType `gorm:"column:type;not null"`
	Balance     decimal.Decimal   `gorm:"column:balance;type:numeric(12,2);not null;default:0"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
