package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a procurement repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListSuppliers(ctx context.Context, limit int) ([]models.Supplier, error) {
	query := r.db.WithContext(ctx).Model(&models.Supplier{}).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var suppliers []models.Supplier
	err := query.Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *repository) FindSupplierByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repository) ListPurchaseOrders(ctx context.Context, filters PurchaseOrderFilters) ([]PurchaseOrderRow, error) {
	query := r.db.WithContext(ctx).
		Table("purchase_orders po").
		Select("po.*, s.name AS supplier_name").
		Joins("JOIN suppliers s ON po.supplier_id = s.id")

	if filters.SupplierID != nil {
		query = query.Where("po.supplier_id = ?", *filters.SupplierID)
	}
	if filters.Status != nil {
		query = query.Where("po.status = ?", *filters.Status)
	}

	var rows []PurchaseOrderRow
	err := query.Order("po.order_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindPurchaseOrderByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&po).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *repository) CreatePurchaseOrder(ctx context.Context, po *models.PurchaseOrder) (*models.PurchaseOrder, error) {
	if err := r.db.WithContext(ctx).Omit("Items").Create(po).Error; err != nil {
		return nil, err
	}
	return po, nil
}

func (r *repository) CreatePurchaseOrderItems(ctx context.Context, items []models.PurchaseOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) UpdatePurchaseOrderStatus(ctx context.Context, id uuid.UUID, status enums.PurchaseOrderStatus, receivedDate *time.Time) error {
	updates := map[string]any{"status": status}
	if receivedDate != nil {
		updates["received_date"] = *receivedDate
	}
	return r.db.WithContext(ctx).
		Model(&models.PurchaseOrder{}).
		Where("id = ?", id).
		Updates(updates).Error
}
