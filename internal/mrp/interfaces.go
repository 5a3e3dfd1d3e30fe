package mrp

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

// Repository defines persistence operations for bills of material.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListBOMItems(ctx context.Context, productID uuid.UUID) ([]BOMRow, error)
	CreateBOMItem(ctx context.Context, item *models.BOMItem) (*models.BOMItem, error)
	ProductExists(ctx context.Context, id uuid.UUID) (bool, error)
}
