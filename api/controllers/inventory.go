package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/api/responses"
	"github.com/calderasoft/erp-backend/api/validators"
	"github.com/calderasoft/erp-backend/internal/inventory"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

// InventoryListProducts returns the catalog, optionally narrowed to a category
// or to items at or below their reorder level.
func InventoryListProducts(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		lowStock, err := validators.ParseQueryBool(r, "lowStock", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListProducts(r.Context(), inventory.ProductFilters{
			Category: validators.ParseQueryString(r, "category"),
			LowStock: lowStock,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, list.Products, list.Degraded)
	}
}

type productCreateRequest struct {
	SKU             string          `json:"sku" validate:"required"`
	Name            string          `json:"name" validate:"required"`
	Description     *string         `json:"description,omitempty"`
	Category        string          `json:"category"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	StockQuantity   int             `json:"stock_quantity" validate:"gte=0"`
	ReorderLevel    int             `json:"reorder_level" validate:"gte=0"`
	ReorderQuantity int             `json:"reorder_quantity" validate:"gte=0"`
	LeadTimeDays    int             `json:"lead_time_days" validate:"gte=0"`
}

func (req productCreateRequest) toInput() inventory.CreateProductInput {
	description := req.Description
	if description != nil {
		cleaned := validators.SanitizeString(*description, 2000)
		description = &cleaned
	}
	return inventory.CreateProductInput{
		SKU:             strings.TrimSpace(req.SKU),
		Name:            validators.SanitizeString(req.Name, 255),
		Description:     description,
		Category:        validators.SanitizeString(req.Category, 100),
		UnitPrice:       req.UnitPrice,
		StockQuantity:   req.StockQuantity,
		ReorderLevel:    req.ReorderLevel,
		ReorderQuantity: req.ReorderQuantity,
		LeadTimeDays:    req.LeadTimeDays,
	}
}

// InventoryCreateProduct registers a catalog entry.
func InventoryCreateProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload productCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// InventoryListMovements returns stock movements joined with their product.
func InventoryListMovements(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, err := validators.ParseQueryUUID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := inventory.MovementFilters{ProductID: productID}
		if from, err := validators.ParseQueryDate(r, "startDate", time.Time{}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if !from.IsZero() {
			filters.DateFrom = &from
		}
		if to, err := validators.ParseQueryDate(r, "endDate", time.Time{}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if !to.IsZero() {
			filters.DateTo = &to
		}

		movements, err := svc.ListMovements(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, movements, false)
	}
}
