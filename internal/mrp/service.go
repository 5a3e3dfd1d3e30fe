package mrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
)

// Service defines bill-of-material operations.
type Service interface {
	ListBOMItems(ctx context.Context, productID uuid.UUID) ([]BOMRow, error)
	CreateBOMItem(ctx context.Context, input CreateBOMItemInput) (*models.BOMItem, error)
}

type service struct {
	repo Repository
}

// NewService builds an MRP service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("mrp repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListBOMItems(ctx context.Context, productID uuid.UUID) ([]BOMRow, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	rows, err := s.repo.ListBOMItems(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bom items")
	}
	return rows, nil
}

func (s *service) CreateBOMItem(ctx context.Context, input CreateBOMItemInput) (*models.BOMItem, error) {
	if input.ProductID == uuid.Nil || input.ComponentProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id and component product id required")
	}
	if input.ProductID == input.ComponentProductID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a product cannot be its own component")
	}
	if input.Quantity.IsNegative() || input.Quantity.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	for _, id := range []uuid.UUID{input.ProductID, input.ComponentProductID} {
		exists, err := s.repo.ProductExists(ctx, id)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check product")
		}
		if !exists {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id})
		}
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	item := &models.BOMItem{
		ID:                 uuid.New(),
		ProductID:          input.ProductID,
		ComponentProductID: input.ComponentProductID,
		Quantity:           input.Quantity,
		Unit:               unit,
		Notes:              input.Notes,
	}

	created, err := s.repo.CreateBOMItem(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create bom item")
	}
	return created, nil
}
