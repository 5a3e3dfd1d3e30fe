package projects

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db"
	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines project planning operations.
type Service interface {
	ListProjects(ctx context.Context, filters ProjectFilters) ([]ProjectRow, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds a projects service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("projects repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) ListProjects(ctx context.Context, filters ProjectFilters) ([]ProjectRow, error) {
	rows, err := s.repo.ListProjects(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list projects")
	}
	return rows, nil
}

// CreateProject plans a project and its initial tasks in one transaction.
func (s *service) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if input.ProjectCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "project code required")
	}
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "project name required")
	}
	if input.StartDate.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start date required")
	}

	status := enums.ProjectStatusPlanning
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid project status")
		}
		status = *input.Status
	}

	project := &models.Project{
		ID:          uuid.New(),
		ProjectCode: input.ProjectCode,
		Name:        input.Name,
		Description: input.Description,
		CustomerID:  input.CustomerID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		Status:      status,
	}

	tasks := make([]models.Task, 0, len(input.Tasks))
	for _, in := range input.Tasks {
		if in.Name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "task name required")
		}
		if in.Progress < 0 || in.Progress > 100 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "task progress must be between 0 and 100")
		}
		taskStatus := enums.TaskStatusNotStarted
		if in.Status != nil {
			if !in.Status.IsValid() {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid task status")
			}
			taskStatus = *in.Status
		}
		tasks = append(tasks, models.Task{
			ID:          uuid.New(),
			ProjectID:   project.ID,
			Name:        in.Name,
			Description: in.Description,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			AssignedTo:  in.AssignedTo,
			Status:      taskStatus,
			Progress:    in.Progress,
		})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.CreateProject(ctx, project); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "project code already exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create project")
		}
		if err := repo.CreateTasks(ctx, tasks); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create tasks")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindProjectByID(ctx, project.ID)
}
