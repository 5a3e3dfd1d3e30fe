package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/internal/inventory"
	"github.com/calderasoft/erp-backend/pkg/db"
	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// StockReceiver adds received purchase order quantities back to product stock
// inside the receipt transaction.
type StockReceiver interface {
	Restock(ctx context.Context, tx *gorm.DB, input inventory.RestockInput) error
}

// Service defines supplier and purchase order operations.
type Service interface {
	ListSuppliers(ctx context.Context, limit int) ([]models.Supplier, error)
	ListPurchaseOrders(ctx context.Context, filters PurchaseOrderFilters) ([]PurchaseOrderRow, error)
	CreatePurchaseOrder(ctx context.Context, input CreatePurchaseOrderInput) (*PurchaseOrderDetail, error)
	UpdatePurchaseOrderStatus(ctx context.Context, id uuid.UUID, status enums.PurchaseOrderStatus) (*PurchaseOrderDetail, error)
}

type service struct {
	repo  Repository
	tx    txRunner
	stock StockReceiver
}

// NewService builds a procurement service with the required dependencies.
func NewService(repo Repository, tx txRunner, stock StockReceiver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("procurement repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock receiver required")
	}
	return &service{repo: repo, tx: tx, stock: stock}, nil
}

func (s *service) ListSuppliers(ctx context.Context, limit int) ([]models.Supplier, error) {
	suppliers, err := s.repo.ListSuppliers(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}
	return suppliers, nil
}

func (s *service) ListPurchaseOrders(ctx context.Context, filters PurchaseOrderFilters) ([]PurchaseOrderRow, error) {
	rows, err := s.repo.ListPurchaseOrders(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list purchase orders")
	}
	return rows, nil
}

func (s *service) getPurchaseOrder(ctx context.Context, id uuid.UUID) (*PurchaseOrderDetail, error) {
	po, err := s.repo.FindPurchaseOrderByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load purchase order")
	}

	detail := &PurchaseOrderDetail{PurchaseOrder: *po}
	supplier, err := s.repo.FindSupplierByID(ctx, po.SupplierID)
	switch {
	case err == nil:
		detail.SupplierName = supplier.Name
	case err != gorm.ErrRecordNotFound:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}
	return detail, nil
}

// CreatePurchaseOrder raises a purchase order with its items in one
// transaction. Stock moves only at receipt, never at creation.
func (s *service) CreatePurchaseOrder(ctx context.Context, input CreatePurchaseOrderInput) (*PurchaseOrderDetail, error) {
	if input.PONumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "po number required")
	}
	if input.SupplierID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "purchase order requires at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item product id required")
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
	}

	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	po := &models.PurchaseOrder{
		ID:           uuid.New(),
		PONumber:     input.PONumber,
		SupplierID:   input.SupplierID,
		OrderDate:    orderDate,
		ExpectedDate: input.ExpectedDate,
		Status:       enums.PurchaseOrderStatusDraft,
	}

	items := make([]models.PurchaseOrderItem, 0, len(input.Items))
	total := decimal.Zero
	for _, in := range input.Items {
		lineTotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		items = append(items, models.PurchaseOrderItem{
			ID:              uuid.New(),
			PurchaseOrderID: po.ID,
			ProductID:       in.ProductID,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			TotalPrice:      lineTotal,
		})
		total = total.Add(lineTotal)
	}
	po.TotalAmount = total

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.FindSupplierByID(ctx, input.SupplierID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
		}

		if _, err := repo.CreatePurchaseOrder(ctx, po); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "po number already exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create purchase order")
		}

		if err := repo.CreatePurchaseOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create purchase order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.getPurchaseOrder(ctx, po.ID)
}

// UpdatePurchaseOrderStatus moves a purchase order to the requested status.
// Receiving a not-yet-received order restocks every line item with incoming
// movements and stamps the received date, all in one transaction with the
// status write.
func (s *service) UpdatePurchaseOrderStatus(ctx context.Context, id uuid.UUID, status enums.PurchaseOrderStatus) (*PurchaseOrderDetail, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid purchase order status")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		po, err := repo.FindPurchaseOrderByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "purchase order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load purchase order")
		}

		var receivedDate *time.Time
		if status == enums.PurchaseOrderStatusReceived && po.Status != enums.PurchaseOrderStatusReceived {
			now := time.Now().UTC()
			receivedDate = &now
			reference := fmt.Sprintf("PO #%s", po.PONumber)
			for _, item := range po.Items {
				err := s.stock.Restock(ctx, tx, inventory.RestockInput{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Reference: reference,
				})
				if err != nil {
					return err
				}
			}
		}

		if err := repo.UpdatePurchaseOrderStatus(ctx, po.ID, status, receivedDate); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update purchase order status")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.getPurchaseOrder(ctx, id)
}
