package projects

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

// Repository defines persistence operations for projects and tasks.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListProjects(ctx context.Context, filters ProjectFilters) ([]ProjectRow, error)
	FindProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	CreateTasks(ctx context.Context, tasks []models.Task) error
}
