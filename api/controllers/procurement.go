package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/api/responses"
	"github.com/calderasoft/erp-backend/api/validators"
	"github.com/calderasoft/erp-backend/internal/procurement"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

const maxSupplierLimit = 500

// ProcurementListSuppliers returns suppliers ordered by name, capped by an
// optional limit parameter.
func ProcurementListSuppliers(svc procurement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "procurement service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxSupplierLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		suppliers, err := svc.ListSuppliers(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, suppliers, false)
	}
}

// ProcurementListPurchaseOrders returns purchase orders joined with their
// supplier, optionally filtered by supplier and status.
func ProcurementListPurchaseOrders(svc procurement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "procurement service unavailable"))
			return
		}

		filters := procurement.PurchaseOrderFilters{}
		if raw := validators.ParseQueryString(r, "status"); raw != "" {
			status, err := enums.ParsePurchaseOrderStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid purchase order status"))
				return
			}
			filters.Status = &status
		}

		supplierID, err := validators.ParseQueryUUID(r, "supplierId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.SupplierID = supplierID

		rows, err := svc.ListPurchaseOrders(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, rows, false)
	}
}

type purchaseOrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type purchaseOrderCreateRequest struct {
	PONumber     string                     `json:"po_number" validate:"required"`
	SupplierID   uuid.UUID                  `json:"supplier_id" validate:"required"`
	OrderDate    *time.Time                 `json:"order_date,omitempty"`
	ExpectedDate *time.Time                 `json:"expected_date,omitempty"`
	Items        []purchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (req purchaseOrderCreateRequest) toInput() procurement.CreatePurchaseOrderInput {
	input := procurement.CreatePurchaseOrderInput{
		PONumber:     strings.TrimSpace(req.PONumber),
		SupplierID:   req.SupplierID,
		OrderDate:    req.OrderDate,
		ExpectedDate: req.ExpectedDate,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, procurement.PurchaseOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return input
}

// ProcurementCreatePurchaseOrder raises a draft purchase order with its items.
func ProcurementCreatePurchaseOrder(svc procurement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "procurement service unavailable"))
			return
		}

		var payload purchaseOrderCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		po, err := svc.CreatePurchaseOrder(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, po)
	}
}

type purchaseOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ProcurementUpdatePurchaseOrderStatus moves a purchase order to the requested
// status. Receiving restocks every line item.
func ProcurementUpdatePurchaseOrderStatus(svc procurement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "procurement service unavailable"))
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "purchaseOrderId"))
		id, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid purchase order id"))
			return
		}

		var payload purchaseOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParsePurchaseOrderStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid purchase order status"))
			return
		}

		po, err := svc.UpdatePurchaseOrderStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, po)
	}
}
