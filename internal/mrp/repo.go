package mrp

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an MRP repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListBOMItems(ctx context.Context, productID uuid.UUID) ([]BOMRow, error) {
	var rows []BOMRow
	err := r.db.WithContext(ctx).
		Table("bom_items b").
		Select(`b.*, pp.name AS parent_product_name, pp.sku AS parent_product_sku,
			p.name AS component_name, p.sku AS component_sku,
			p.unit_price AS component_price, p.stock_quantity AS component_stock`).
		Joins("JOIN products p ON b.component_product_id = p.id").
		Joins("JOIN products pp ON b.product_id = pp.id").
		Where("b.product_id = ?", productID).
		Order("p.sku ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateBOMItem(ctx context.Context, item *models.BOMItem) (*models.BOMItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) ProductExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
