package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

// Repository defines persistence operations for products and stock movements.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListProducts(ctx context.Context, filters ProductFilters) ([]models.Product, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DecrementStock(ctx context.Context, productID uuid.UUID, qty int) (int64, error)
	IncrementStock(ctx context.Context, productID uuid.UUID, qty int) (int64, error)
	CreateMovement(ctx context.Context, movement *models.InventoryMovement) error
	ListMovements(ctx context.Context, filters MovementFilters) ([]MovementRow, error)
	CreateProcessEvent(ctx context.Context, event *models.ProcessEvent) error
}
