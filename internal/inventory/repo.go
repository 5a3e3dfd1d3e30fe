package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an inventory repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListProducts(ctx context.Context, filters ProductFilters) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.LowStock {
		query = query.Where("stock_quantity <= reorder_level")
	}

	var products []models.Product
	err := query.Order("name ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DecrementStock subtracts qty from stock guarded against underflow; the
// returned row count is zero when the product is missing or stock is short.
func (r *repository) DecrementStock(ctx context.Context, productID uuid.UUID, qty int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// IncrementStock adds qty back to stock; the returned row count is zero when
// the product is missing.
func (r *repository) IncrementStock(ctx context.Context, productID uuid.UUID, qty int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", qty))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) CreateMovement(ctx context.Context, movement *models.InventoryMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *repository) ListMovements(ctx context.Context, filters MovementFilters) ([]MovementRow, error) {
	query := r.db.WithContext(ctx).
		Table("inventory_movements m").
		Select("m.*, p.name AS product_name, p.sku AS product_sku").
		Joins("JOIN products p ON m.product_id = p.id")

	if filters.ProductID != nil {
		query = query.Where("m.product_id = ?", *filters.ProductID)
	}
	if filters.DateFrom != nil {
		query = query.Where("m.movement_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("m.movement_date <= ?", *filters.DateTo)
	}

	var rows []MovementRow
	err := query.Order("m.movement_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateProcessEvent(ctx context.Context, event *models.ProcessEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
