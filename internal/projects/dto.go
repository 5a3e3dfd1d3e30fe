package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

// ProjectFilters describe the inputs supported by the projects list.
type ProjectFilters struct {
	Status     *enums.ProjectStatus
	CustomerID *uuid.UUID
}

// ProjectRow is a project joined with its customer and task counters.
type ProjectRow struct {
	models.Project
	CustomerName   *string `json:"customer_name" gorm:"column:customer_name"`
	TaskCount      int     `json:"task_count" gorm:"column:task_count"`
	CompletedTasks int     `json:"completed_tasks" gorm:"column:completed_tasks"`
}

// TaskInput captures one requested task when planning a project.
type TaskInput struct {
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	AssignedTo  *string
	Status      *enums.TaskStatus
	Progress    int
}

// CreateProjectInput captures the fields accepted when planning a project.
type CreateProjectInput struct {
	ProjectCode string
	Name        string
	Description *string
	CustomerID  *uuid.UUID
	StartDate   time.Time
	EndDate     *time.Time
	Budget      decimal.Decimal
	Status      *enums.ProjectStatus
	Tasks       []TaskInput
}
