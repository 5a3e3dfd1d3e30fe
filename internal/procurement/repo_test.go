package procurement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
)

func setupProcurementTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS suppliers (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  name TEXT NOT NULL,
  contact_person TEXT,
  email TEXT,
  phone TEXT,
  address TEXT,
  lead_time_days INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  po_number TEXT NOT NULL UNIQUE,
  supplier_id TEXT NOT NULL,
  order_date DATETIME NOT NULL,
  expected_date DATETIME,
  received_date DATETIME,
  status TEXT NOT NULL DEFAULT 'draft',
  total_amount NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS purchase_order_items (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  purchase_order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL DEFAULT 0,
  total_price NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
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
		`CREATE TABLE IF NOT EXISTS inventory_movements (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  movement_type TEXT NOT NULL,
  reference TEXT NOT NULL DEFAULT '',
  movement_date DATETIME NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		for _, table := range []string{"inventory_movements", "purchase_order_items", "purchase_orders", "products", "suppliers"} {
			db.Exec("DELETE FROM " + table)
		}
	})

	return db
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{
		ID:           uuid.New(),
		Name:         name,
		LeadTimeDays: 7,
	}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

func seedPurchaseOrder(t *testing.T, db *gorm.DB, number string, supplierID uuid.UUID, status enums.PurchaseOrderStatus, when time.Time) *models.PurchaseOrder {
	t.Helper()
	po := &models.PurchaseOrder{
		ID:         uuid.New(),
		PONumber:   number,
		SupplierID: supplierID,
		OrderDate:  when,
		Status:     status,
	}
	require.NoError(t, db.Omit("Items").Create(po).Error)
	return po
}

func TestListSuppliersOrdersByNameAndLimits(t *testing.T) {
	db := setupProcurementTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedSupplier(t, db, "Parts Unlimited")
	seedSupplier(t, db, "Acme Supply")
	seedSupplier(t, db, "Mega Components")

	all, err := repo.ListSuppliers(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Acme Supply", all[0].Name)

	capped, err := repo.ListSuppliers(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestListPurchaseOrdersFilters(t *testing.T) {
	db := setupProcurementTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	acme := seedSupplier(t, db, "Acme Supply")
	mega := seedSupplier(t, db, "Mega Components")

	jan := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	seedPurchaseOrder(t, db, "PO-1001", acme.ID, enums.PurchaseOrderStatusDraft, jan)
	seedPurchaseOrder(t, db, "PO-1002", mega.ID, enums.PurchaseOrderStatusSent, feb)

	all, err := repo.ListPurchaseOrders(ctx, PurchaseOrderFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "PO-1002", all[0].PONumber, "expected newest order first")
	assert.Equal(t, "Mega Components", all[0].SupplierName)

	sent := enums.PurchaseOrderStatusSent
	byStatus, err := repo.ListPurchaseOrders(ctx, PurchaseOrderFilters{Status: &sent})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "PO-1002", byStatus[0].PONumber)

	bySupplier, err := repo.ListPurchaseOrders(ctx, PurchaseOrderFilters{SupplierID: &acme.ID})
	require.NoError(t, err)
	require.Len(t, bySupplier, 1)
	assert.Equal(t, "PO-1001", bySupplier[0].PONumber)
}

func TestFindPurchaseOrderByIDPreloadsItems(t *testing.T) {
	db := setupProcurementTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	supplier := seedSupplier(t, db, "Acme Supply")
	po := seedPurchaseOrder(t, db, "PO-1003", supplier.ID, enums.PurchaseOrderStatusDraft, time.Now().UTC())

	items := []models.PurchaseOrderItem{
		{ID: uuid.New(), PurchaseOrderID: po.ID, ProductID: uuid.New(), Quantity: 10, UnitPrice: decimal.NewFromInt(4), TotalPrice: decimal.NewFromInt(40)},
		{ID: uuid.New(), PurchaseOrderID: po.ID, ProductID: uuid.New(), Quantity: 5, UnitPrice: decimal.NewFromInt(2), TotalPrice: decimal.NewFromInt(10)},
	}
	require.NoError(t, repo.CreatePurchaseOrderItems(ctx, items))

	found, err := repo.FindPurchaseOrderByID(ctx, po.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)

	_, err = repo.FindPurchaseOrderByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
