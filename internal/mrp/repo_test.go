package mrp

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
)

func setupMRPTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  sku TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  description TEXT,
  category TEXT NOT NULL DEFAULT '',
  unit_price NUMERIC NOT NULL DEFAULT 0,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  reorder_level INTEGER NOT NULL DEFAULT 0,
  reorder_quantity INTEGER NOT NULL DEFAULT 0,
  lead_time_days INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS bom_items (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  product_id TEXT NOT NULL,
  component_product_id TEXT NOT NULL,
  quantity NUMERIC NOT NULL,
  unit TEXT NOT NULL DEFAULT 'pcs',
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM bom_items")
		db.Exec("DELETE FROM products")
	})

	return db
}

func seedMRPProduct(t *testing.T, db *gorm.DB, sku, name string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:            uuid.New(),
		SKU:           sku,
		Name:          name,
		UnitPrice:     decimal.NewFromFloat(2.49),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestListBOMItemsJoinsBothSides(t *testing.T) {
	db := setupMRPTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()

	widget := seedMRPProduct(t, db, "SKU-001", "Widget A", 100)
	bolt := seedMRPProduct(t, db, "SKU-005", "Component 1", 1000)
	plate := seedMRPProduct(t, db, "SKU-006", "Component 2", 800)

	for _, component := range []*models.Product{bolt, plate} {
		_, err := svc.CreateBOMItem(ctx, CreateBOMItemInput{
			ProductID:          widget.ID,
			ComponentProductID: component.ID,
			Quantity:           decimal.NewFromInt(4),
		})
		require.NoError(t, err)
	}

	rows, err := svc.ListBOMItems(ctx, widget.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget A", rows[0].ParentProductName)
	assert.Equal(t, "SKU-005", rows[0].ComponentSKU)
	assert.Equal(t, 1000, rows[0].ComponentStock)

	empty, err := svc.ListBOMItems(ctx, bolt.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListBOMItemsRequiresProductID(t *testing.T) {
	db := setupMRPTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.ListBOMItems(context.Background(), uuid.Nil)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateBOMItemValidation(t *testing.T) {
	db := setupMRPTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()

	widget := seedMRPProduct(t, db, "SKU-001", "Widget A", 100)

	_, err = svc.CreateBOMItem(ctx, CreateBOMItemInput{
		ProductID:          widget.ID,
		ComponentProductID: widget.ID,
		Quantity:           decimal.NewFromInt(1),
	})
	require.Error(t, err, "self-referencing component")

	_, err = svc.CreateBOMItem(ctx, CreateBOMItemInput{
		ProductID:          widget.ID,
		ComponentProductID: uuid.New(),
		Quantity:           decimal.NewFromInt(1),
	})
	require.Error(t, err, "unknown component")
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	other := seedMRPProduct(t, db, "SKU-002", "Widget B", 10)
	_, err = svc.CreateBOMItem(ctx, CreateBOMItemInput{
		ProductID:          widget.ID,
		ComponentProductID: other.ID,
		Quantity:           decimal.Zero,
	})
	require.Error(t, err, "zero quantity")
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateBOMItemDefaultsUnit(t *testing.T) {
	db := setupMRPTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()

	widget := seedMRPProduct(t, db, "SKU-001", "Widget A", 100)
	bolt := seedMRPProduct(t, db, "SKU-005", "Component 1", 1000)

	item, err := svc.CreateBOMItem(ctx, CreateBOMItemInput{
		ProductID:          widget.ID,
		ComponentProductID: bolt.ID,
		Quantity:           decimal.NewFromFloat(2.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "pcs", item.Unit)
}
