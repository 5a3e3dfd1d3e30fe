package projects

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a projects repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListProjects(ctx context.Context, filters ProjectFilters) ([]ProjectRow, error) {
	query := r.db.WithContext(ctx).
		Table("projects p").
		Select(`p.*, c.name AS customer_name,
			(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) AS task_count,
			(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id AND t.status = 'completed') AS completed_tasks`).
		Joins("LEFT JOIN customers c ON p.customer_id = c.id")

	if filters.Status != nil {
		query = query.Where("p.status = ?", *filters.Status)
	}
	if filters.CustomerID != nil {
		query = query.Where("p.customer_id = ?", *filters.CustomerID)
	}

	var rows []ProjectRow
	err := query.Order("p.start_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *repository) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := r.db.WithContext(ctx).Omit("Tasks").Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (r *repository) CreateTasks(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}
