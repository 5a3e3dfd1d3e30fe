package procurement

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/internal/inventory"
	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func newProcurementService(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
	stock, err := inventory.NewService(inventory.NewRepository(db), logg, false)
	require.NoError(t, err)

	svc, err := NewService(NewRepository(db), gormTxRunner{db: db}, stock)
	require.NoError(t, err)
	return svc
}

func seedWarehouseProduct(t *testing.T, db *gorm.DB, sku string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:            uuid.New(),
		SKU:           sku,
		Name:          "Product " + sku,
		Category:      "Widgets",
		UnitPrice:     decimal.NewFromFloat(9.99),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func countTableRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestCreatePurchaseOrderPersistsHeaderAndItems(t *testing.T) {
	db := setupProcurementTestDB(t)
	svc := newProcurementService(t, db)
	ctx := context.Background()

	supplier := seedSupplier(t, db, "Acme Supply")
	bolts := seedWarehouseProduct(t, db, "SKU-100", 0)
	plates := seedWarehouseProduct(t, db, "SKU-101", 0)

	detail, err := svc.CreatePurchaseOrder(ctx, CreatePurchaseOrderInput{
		PONumber:   "PO-2001",
		SupplierID: supplier.ID,
		Items: []PurchaseOrderItemInput{
			{ProductID: bolts.ID, Quantity: 50, UnitPrice: decimal.NewFromInt(2)},
			{ProductID: plates.ID, Quantity: 10, UnitPrice: decimal.NewFromInt(15)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enums.PurchaseOrderStatusDraft, detail.Status)
	assert.Equal(t, "Acme Supply", detail.SupplierName)
	assert.Len(t, detail.Items, 2)
	// 50*2 + 10*15 = 250
	assert.True(t, detail.TotalAmount.Equal(decimal.NewFromInt(250)), "got total %s", detail.TotalAmount)

	assert.EqualValues(t, 1, countTableRows(t, db, "purchase_orders"))
	assert.EqualValues(t, 2, countTableRows(t, db, "purchase_order_items"))

	// nothing lands in stock before receipt
	assert.EqualValues(t, 0, countTableRows(t, db, "inventory_movements"))
	var reloaded models.Product
	require.NoError(t, db.Where("id = ?", bolts.ID).First(&reloaded).Error)
	assert.Equal(t, 0, reloaded.StockQuantity)
}

func TestCreatePurchaseOrderRejectsUnknownSupplier(t *testing.T) {
	db := setupProcurementTestDB(t)
	svc := newProcurementService(t, db)
	ctx := context.Background()

	bolts := seedWarehouseProduct(t, db, "SKU-110", 0)

	_, err := svc.CreatePurchaseOrder(ctx, CreatePurchaseOrderInput{
		PONumber:   "PO-2002",
		SupplierID: uuid.New(),
		Items:      []PurchaseOrderItemInput{{ProductID: bolts.ID, Quantity: 5, UnitPrice: decimal.NewFromInt(1)}},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	assert.EqualValues(t, 0, countTableRows(t, db, "purchase_orders"))
	assert.EqualValues(t, 0, countTableRows(t, db, "purchase_order_items"))
}

func TestCreatePurchaseOrderConflictOnDuplicateNumber(t *testing.T) {
	db := setupProcurementTestDB(t)
	svc := newProcurementService(t, db)
	ctx := context.Background()

	supplier := seedSupplier(t, db, "Acme Supply")
	bolts := seedWarehouseProduct(t, db, "SKU-111", 0)

	input := CreatePurchaseOrderInput{
		PONumber:   "PO-2003",
		SupplierID: supplier.ID,
		Items:      []PurchaseOrderItemInput{{ProductID: bolts.ID, Quantity: 5, UnitPrice: decimal.NewFromInt(1)}},
	}

	_, err := svc.CreatePurchaseOrder(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreatePurchaseOrder(ctx, input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestCreatePurchaseOrderValidation(t *testing.T) {
	db := setupProcurementTestDB(t)
	svc := newProcurementService(t, db)
	ctx := context.Background()

	_, err := svc.CreatePurchaseOrder(ctx, CreatePurchaseOrderInput{
		SupplierID: uuid.New(),
		Items:      []PurchaseOrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err, "missing po number")
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.CreatePurchaseOrder(ctx, CreatePurchaseOrderInput{PONumber: "PO-1", SupplierID: uuid.New()})
	require.Error(t, err, "missing items")

	_, err = svc.CreatePurchaseOrder(ctx, CreatePurchaseOrderInput{
		PONumber:   "PO-1",
		SupplierID: uuid.New(),
		Items:      []PurchaseOrderItemInput{{ProductID: uuid.New(), Quantity: 0}},
	})
	require.Error(t, err, "non-positive quantity")
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdatePurchaseOrderStatusReceiveRestocks(t *testing.T) {
	db := setupProcurementTestDB(t)
	svc := newProcurementService(t, db)
	ctx := context.Background()

	supplier := seedSupplier(t, db, "Acme Supply")
	bolts := seedWarehouseProduct(t, db, "SKU-120", 5)
	plates := seedWarehouseProduct(t, db, "SKU-121", 2)

	created, err := svc.CreatePurchaseOrder(ctx, CreatePurchaseOrderInput{
		PONumber:   "PO-3001",
		SupplierID: supplier.ID,
		Items: []PurchaseOrderItemInput{
			{ProductID: bolts.ID, Quantity: 50, UnitPrice: decimal.NewFromInt(2)},
			{ProductID: plates.ID, Quantity: 10, UnitPrice: decimal.NewFromInt(15)},
		},
	})
	require.NoError(t, err)

	received, err := svc.UpdatePurchaseOrderStatus(ctx, created.ID, enums.PurchaseOrderStatusReceived)
	require.NoError(t, err)

	assert.Equal(t, enums.PurchaseOrderStatusReceived, received.Status)
	require.NotNil(t, received.ReceivedDate)

	var reloaded models.Product
	require.NoError(t, db.Where("id = ?", bolts.ID).First(&reloaded).Error)
	assert.Equal(t, 55, reloaded.StockQuantity)
	var reloadedPlates models.Product
	require.NoError(t, db.Where("id = ?", plates.ID).First(&reloadedPlates).Error)
	assert.Equal(t, 12, reloadedPlates.StockQuantity)

	var movements []models.InventoryMovement
	require.NoError(t, db.Where("product_id = ?", bolts.ID).Find(&movements).Error)
	require.Len(t, movements, 1)
	assert.Equal(t, 50, movements[0].Quantity)
	assert.Equal(t, enums.MovementTypeIn, movements[0].MovementType)
	assert.Equal(t, "PO #PO-3001", movements[0].Reference)
}

func TestUpdatePurchaseOrderStatusReceiveTwiceRestocksOnce(t *testing.T) {
	db := setupProcurementTestDB(t)
	svc := newProcurementService(t, db)
	ctx := context.Background()

	supplier := seedSupplier(t, db, "Acme Supply")
	bolts := seedWarehouseProduct(t, db, "SKU-130", 0)

	created, err := svc.CreatePurchaseOrder(ctx, CreatePurchaseOrderInput{
		PONumber:   "PO-3002",
		SupplierID: supplier.ID,
		Items:      []PurchaseOrderItemInput{{ProductID: bolts.ID, Quantity: 20, UnitPrice: decimal.NewFromInt(3)}},
	})
	require.NoError(t, err)

	_, err = svc.UpdatePurchaseOrderStatus(ctx, created.ID, enums.PurchaseOrderStatusReceived)
	require.NoError(t, err)
	_, err = svc.UpdatePurchaseOrderStatus(ctx, created.ID, enums.PurchaseOrderStatusReceived)
	require.NoError(t, err)

	var reloaded models.Product
	require.NoError(t, db.Where("id = ?", bolts.ID).First(&reloaded).Error)
	assert.Equal(t, 20, reloaded.StockQuantity)
	assert.EqualValues(t, 1, countTableRows(t, db, "inventory_movements"))
}

func TestUpdatePurchaseOrderStatusValidation(t *testing.T) {
	db := setupProcurementTestDB(t)
	svc := newProcurementService(t, db)
	ctx := context.Background()

	_, err := svc.UpdatePurchaseOrderStatus(ctx, uuid.New(), enums.PurchaseOrderStatus("mislaid"))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.UpdatePurchaseOrderStatus(ctx, uuid.New(), enums.PurchaseOrderStatusSent)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
