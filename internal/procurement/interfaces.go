package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Repository defines persistence operations for suppliers and purchase orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListSuppliers(ctx context.Context, limit int) ([]models.Supplier, error)
	FindSupplierByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	ListPurchaseOrders(ctx context.Context, filters PurchaseOrderFilters) ([]PurchaseOrderRow, error)
	FindPurchaseOrderByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, po *models.PurchaseOrder) (*models.PurchaseOrder, error)
	CreatePurchaseOrderItems(ctx context.Context, items []models.PurchaseOrderItem) error
	UpdatePurchaseOrderStatus(ctx context.Context, id uuid.UUID, status enums.PurchaseOrderStatus, receivedDate *time.Time) error
}
