package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Project groups tasks and carries a budget consumed by ledger transactions.
type Project struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectCode string              `gorm:"column:project_code;not null;uniqueIndex"`
	Name        string              `gorm:"column:name;not null"`
	Description *string             `gorm:"column:description"`
	CustomerID  *uuid.UUID          `gorm:"column:customer_id;type:uuid"`
	StartDate   time.Time           `gorm:"column:start_date;not null"`
	EndDate     *time.Time          `gorm:"column:end_date"`
	Budget      decimal.Decimal     `gorm:"column:budget;type:numeric(12,2);not null;default:0"`
	Status      enums.ProjectStatus `gorm:"column:status;not null;default:'planning'"`
	Tasks       []Task              `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// Task is one unit of project work; progress is 0-100.
type Task struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID   uuid.UUID        `gorm:"column:project_id;type:uuid;not null"`
	Name        string           `gorm:"column:name;not null"`
	Description *string          `gorm:"column:description"`
	StartDate   *time.Time       `gorm:"column:start_date"`
	EndDate     *time.Time       `gorm:"column:end_date"`
	AssignedTo  *string          `gorm:"column:assigned_to"`
	Status      enums.TaskStatus `gorm:"column:status;not null;default:'not-started'"`
	Progress    int              `gorm:"column:progress;not null;default:0"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
