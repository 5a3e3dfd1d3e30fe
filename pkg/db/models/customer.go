package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is reference data consumed by sales and projects.
type Customer struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string          `gorm:"column:name;not null"`
	ContactPerson *string         `gorm:"column:contact_person"`
	Email         *string         `gorm:"column:email"`
	Phone         *string         `gorm:"column:phone"`
	Address       *string         `gorm:"column:address"`
	CreditLimit   decimal.Decimal `gorm:"column:credit_limit;type:numeric(12,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
