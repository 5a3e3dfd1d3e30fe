package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Repository defines persistence operations for orders and their items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListOrders(ctx context.Context, filters OrderFilters) ([]OrderRow, error)
	FindOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus, shippedDate *time.Time) error
	CreateShipment(ctx context.Context, shipment *models.Shipment) error
}
