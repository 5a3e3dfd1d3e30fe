package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/api/responses"
	"github.com/calderasoft/erp-backend/api/validators"
	"github.com/calderasoft/erp-backend/internal/projects"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

// ProjectsList returns projects with task counters, optionally filtered by
// status and customer.
func ProjectsList(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "projects service unavailable"))
			return
		}

		filters := projects.ProjectFilters{}
		if raw := validators.ParseQueryString(r, "status"); raw != "" {
			status, err := enums.ParseProjectStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid project status"))
				return
			}
			filters.Status = &status
		}

		customerID, err := validators.ParseQueryUUID(r, "customerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.CustomerID = customerID

		rows, err := svc.ListProjects(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, rows, false)
	}
}

type taskRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Progress    int        `json:"progress" validate:"gte=0,lte=100"`
}

type projectCreateRequest struct {
	ProjectCode string          `json:"project_code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description,omitempty"`
	CustomerID  *uuid.UUID      `json:"customer_id,omitempty"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	Status      *string         `json:"status,omitempty"`
	Tasks       []taskRequest   `json:"tasks,omitempty" validate:"omitempty,dive"`
}

func (req projectCreateRequest) toInput() (projects.CreateProjectInput, error) {
	input := projects.CreateProjectInput{
		ProjectCode: strings.TrimSpace(req.ProjectCode),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CustomerID:  req.CustomerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
	}
	if req.Status != nil {
		status, err := enums.ParseProjectStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			return projects.CreateProjectInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid project status")
		}
		input.Status = &status
	}
	for _, task := range req.Tasks {
		taskInput := projects.TaskInput{
			Name:        strings.TrimSpace(task.Name),
			Description: task.Description,
			StartDate:   task.StartDate,
			EndDate:     task.EndDate,
			AssignedTo:  task.AssignedTo,
			Progress:    task.Progress,
		}
		if task.Status != nil {
			status, err := enums.ParseTaskStatus(strings.TrimSpace(*task.Status))
			if err != nil {
				return projects.CreateProjectInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid task status")
			}
			taskInput.Status = &status
		}
		input.Tasks = append(input.Tasks, taskInput)
	}
	return input, nil
}

// ProjectsCreate plans a project together with its tasks in one transaction.
func ProjectsCreate(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "projects service unavailable"))
			return
		}

		var payload projectCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		project, err := svc.CreateProject(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, project)
	}
}
