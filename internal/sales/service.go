package sales

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

const defaultCarrier = "Default Carrier"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// StockKeeper adjusts product stock inside the order's transaction: Consume
// for fulfillment, Restock when a cancellation puts inventory back.
type StockKeeper interface {
	Consume(ctx context.Context, tx *gorm.DB, input inventory.ConsumeInput) error
	Restock(ctx context.Context, tx *gorm.DB, input inventory.RestockInput) error
}

// Service defines order operations beyond repository reads.
type Service interface {
	ListOrders(ctx context.Context, filters OrderFilters) ([]OrderRow, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*OrderDetail, error)
}

type service struct {
	repo  Repository
	tx    txRunner
	stock StockKeeper
}

// NewService builds a sales service with the required dependencies.
func NewService(repo Repository, tx txRunner, stock StockKeeper) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock consumer required")
	}
	return &service{repo: repo, tx: tx, stock: stock}, nil
}

func (s *service) ListOrders(ctx context.Context, filters OrderFilters) ([]OrderRow, error) {
	rows, err := s.repo.ListOrders(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return rows, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, error) {
	order, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	detail := &OrderDetail{Order: *order}
	customer, err := s.repo.FindCustomerByID(ctx, order.CustomerID)
	switch {
	case err == nil:
		detail.CustomerName = customer.Name
	case err != gorm.ErrRecordNotFound:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return detail, nil
}

// CreateOrder places an order atomically: the order row, its items, one
// outgoing movement per item, the guarded stock decrements, and any reorder
// alerts all commit together or not at all. A duplicate submission creates a
// second order; callers that need idempotence must dedupe upstream.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDetail, error) {
	if input.OrderNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item product id required")
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
	}

	status := enums.OrderStatusDraft
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
		}
		status = *input.Status
	}

	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := &models.Order{
		ID:           uuid.New(),
		OrderNumber:  input.OrderNumber,
		CustomerID:   input.CustomerID,
		OrderDate:    orderDate,
		RequiredDate: input.RequiredDate,
		Status:       status,
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	total := decimal.Zero
	for _, in := range input.Items {
		lineTotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Sub(in.Discount)
		items = append(items, models.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			Discount:   in.Discount,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.TotalAmount = total

	reference := fmt.Sprintf("Order #%s", order.OrderNumber)

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.FindCustomerByID(ctx, input.CustomerID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
		}

		if _, err := repo.CreateOrder(ctx, order); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "order number already exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		for _, item := range items {
			err := s.stock.Consume(ctx, tx, inventory.ConsumeInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				OrderID:   order.ID,
				Reference: reference,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}

// UpdateOrderStatus moves an order to the requested status. Cancelling a
// not-yet-cancelled order restores stock with incoming movements per item;
// shipping a not-yet-shipped order records a shipment and stamps the shipped
// date. All side effects share one transaction with the status write.
func (s *service) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*OrderDetail, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindOrderByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		if status == enums.OrderStatusCancelled && order.Status != enums.OrderStatusCancelled {
			reference := fmt.Sprintf("Cancelled Order #%s", order.OrderNumber)
			for _, item := range order.Items {
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

		var shippedDate *time.Time
		if status == enums.OrderStatusShipped && order.Status != enums.OrderStatusShipped {
			now := time.Now().UTC()
			shippedDate = &now
			carrier := defaultCarrier
			tracking := fmt.Sprintf("TRK-%s-%s", order.OrderNumber, now.Format("200601021504"))
			shipment := &models.Shipment{
				ID:             uuid.New(),
				ShipmentNumber: fmt.Sprintf("SHP-%s-%s", now.Format("20060102"), order.OrderNumber),
				OrderID:        order.ID,
				Carrier:        &carrier,
				TrackingNumber: &tracking,
				ShippedDate:    shippedDate,
				Status:         enums.ShipmentStatusShipped,
			}
			if err := repo.CreateShipment(ctx, shipment); err != nil {
				if db.IsUniqueViolation(err, "") {
					return pkgerrors.New(pkgerrors.CodeConflict, "shipment already recorded for this order today")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipment")
			}
		}

		if err := repo.UpdateOrderStatus(ctx, order.ID, status, shippedDate); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, id)
}
