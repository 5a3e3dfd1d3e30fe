package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/pkg/db"
	"github.com/calderasoft/erp-backend/pkg/db/models"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

// Service defines catalog and stock operations.
type Service interface {
	ListProducts(ctx context.Context, filters ProductFilters) (*ProductList, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	ListMovements(ctx context.Context, filters MovementFilters) ([]MovementRow, error)
	Consume(ctx context.Context, tx *gorm.DB, input ConsumeInput) error
	Restock(ctx context.Context, tx *gorm.DB, input RestockInput) error
}

type service struct {
	repo             Repository
	logg             *logger.Logger
	degradedFallback bool
}

// NewService builds an inventory service. When degradedFallback is enabled, a
// failed product read serves the static fallback catalog instead of an error.
func NewService(repo Repository, logg *logger.Logger, degradedFallback bool) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{repo: repo, logg: logg, degradedFallback: degradedFallback}, nil
}

func (s *service) ListProducts(ctx context.Context, filters ProductFilters) (*ProductList, error) {
	products, err := s.repo.ListProducts(ctx, filters)
	if err != nil {
		if !s.degradedFallback {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
		}
		if s.logg != nil {
			fctx := s.logg.WithFields(ctx, map[string]any{"error": err.Error()})
			s.logg.Warn(fctx, "product store unavailable, serving fallback catalog")
		}
		return &ProductList{Products: fallbackCatalog(filters), Degraded: true}, nil
	}
	return &ProductList{Products: products}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.StockQuantity < 0 || input.ReorderLevel < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock and reorder level must not be negative")
	}

	product := &models.Product{
		SKU:             input.SKU,
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		UnitPrice:       input.UnitPrice,
		StockQuantity:   input.StockQuantity,
		ReorderLevel:    input.ReorderLevel,
		ReorderQuantity: input.ReorderQuantity,
		LeadTimeDays:    input.LeadTimeDays,
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "sku already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return created, nil
}

func (s *service) ListMovements(ctx context.Context, filters MovementFilters) ([]MovementRow, error) {
	rows, err := s.repo.ListMovements(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list movements")
	}
	return rows, nil
}

// Consume records an outgoing movement and decrements stock inside the caller's
// transaction. The decrement is conditional on sufficient stock so concurrent
// orders cannot drive the quantity negative. When the remaining stock falls to
// the reorder level or below, a pending reorder alert is inserted.
func (s *service) Consume(ctx context.Context, tx *gorm.DB, input ConsumeInput) error {
	if input.Quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	repo := s.repo.WithTx(tx)

	movement := &models.InventoryMovement{
		ProductID:    input.ProductID,
		Quantity:     -input.Quantity,
		MovementType: enums.MovementTypeOut,
		Reference:    input.Reference,
		MovementDate: time.Now().UTC(),
	}
	if err := repo.CreateMovement(ctx, movement); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record movement")
	}

	affected, err := repo.DecrementStock(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
	}
	if affected == 0 {
		if _, err := repo.FindProductByID(ctx, input.ProductID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
					WithDetails(map[string]any{"product_id": input.ProductID})
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		return pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock").
			WithDetails(map[string]any{"product_id": input.ProductID, "requested": input.Quantity})
	}

	product, err := repo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product after decrement")
	}

	if product.StockQuantity <= product.ReorderLevel {
		orderID := input.OrderID
		event := &models.ProcessEvent{
			EventType: enums.ProcessEventTypeAlert,
			Description: fmt.Sprintf(
				"Reorder point reached for product %s. Current stock: %d, Reorder level: %d",
				product.SKU, product.StockQuantity, product.ReorderLevel,
			),
			Status:   enums.ProcessEventStatusPending,
			Severity: enums.ProcessEventSeverityMedium,
		}
		if orderID != uuid.Nil {
			event.OrderID = &orderID
		}
		if err := repo.CreateProcessEvent(ctx, event); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create reorder alert")
		}
	}
	return nil
}

// Restock records an incoming movement and adds the quantity back to stock
// inside the caller's transaction. Used when an order is cancelled or a
// purchase order is received.
func (s *service) Restock(ctx context.Context, tx *gorm.DB, input RestockInput) error {
	if input.Quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	repo := s.repo.WithTx(tx)

	movement := &models.InventoryMovement{
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		MovementType: enums.MovementTypeIn,
		Reference:    input.Reference,
		MovementDate: time.Now().UTC(),
	}
	if err := repo.CreateMovement(ctx, movement); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record movement")
	}

	affected, err := repo.IncrementStock(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "increment stock")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": input.ProductID})
	}
	return nil
}
