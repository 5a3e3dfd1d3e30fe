package sales

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

func setupSalesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  name TEXT NOT NULL,
  contact_person TEXT,
  email TEXT,
  phone TEXT,
  address TEXT,
  credit_limit NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  order_number TEXT NOT NULL UNIQUE,
  customer_id TEXT NOT NULL,
  order_date DATETIME NOT NULL,
  required_date DATETIME,
  shipped_date DATETIME,
  status TEXT NOT NULL DEFAULT 'draft',
  total_amount NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL DEFAULT 0,
  discount NUMERIC NOT NULL DEFAULT 0,
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
		`CREATE TABLE IF NOT EXISTS shipments (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  shipment_number TEXT NOT NULL UNIQUE,
  order_id TEXT NOT NULL,
  carrier TEXT,
  tracking_number TEXT,
  shipped_date DATETIME,
  delivered_date DATETIME,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS process_events (
  id TEXT PRIMARY KEY NOT NULL DEFAULT (lower(hex(randomblob(16)))),
  event_type TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'pending',
  severity TEXT NOT NULL DEFAULT 'low',
  order_id TEXT,
  purchase_order_id TEXT,
  project_id TEXT,
  shipment_id TEXT,
  resolved_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		for _, table := range []string{"process_events", "shipments", "inventory_movements", "order_items", "orders", "products", "customers"} {
			db.Exec("DELETE FROM " + table)
		}
	})

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		ID:          uuid.New(),
		Name:        name,
		CreditLimit: decimal.NewFromInt(50000),
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedOrder(t *testing.T, db *gorm.DB, number string, customerID uuid.UUID, status enums.OrderStatus, when time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: number,
		CustomerID:  customerID,
		OrderDate:   when,
		Status:      status,
	}
	require.NoError(t, db.Omit("Items").Create(order).Error)
	return order
}

func TestListOrdersFilters(t *testing.T) {
	db := setupSalesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	acme := seedCustomer(t, db, "Acme Corp")
	globex := seedCustomer(t, db, "Globex")

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "ORD-1001", acme.ID, enums.OrderStatusDraft, jan)
	seedOrder(t, db, "ORD-1002", globex.ID, enums.OrderStatusConfirmed, feb)

	all, err := repo.ListOrders(ctx, OrderFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ORD-1002", all[0].OrderNumber, "expected newest order first")
	assert.Equal(t, "Globex", all[0].CustomerName)

	confirmed := enums.OrderStatusConfirmed
	byStatus, err := repo.ListOrders(ctx, OrderFilters{Status: &confirmed})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "ORD-1002", byStatus[0].OrderNumber)

	byCustomer, err := repo.ListOrders(ctx, OrderFilters{CustomerID: &acme.ID})
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, "ORD-1001", byCustomer[0].OrderNumber)
}

func TestFindOrderByIDPreloadsItems(t *testing.T) {
	db := setupSalesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Acme Corp")
	order := seedOrder(t, db, "ORD-1001", customer.ID, enums.OrderStatusDraft, time.Now().UTC())

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(10), TotalPrice: decimal.NewFromInt(20)},
		{ID: uuid.New(), OrderID: order.ID, ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(5), TotalPrice: decimal.NewFromInt(5)},
	}
	require.NoError(t, repo.CreateOrderItems(ctx, items))

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)

	_, err = repo.FindOrderByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
