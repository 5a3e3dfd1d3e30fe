package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/api/responses"
	"github.com/calderasoft/erp-backend/api/validators"
	"github.com/calderasoft/erp-backend/internal/mrp"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

// MRPListBOMItems returns the bill of materials for a product. The productId
// query parameter is mandatory.
func MRPListBOMItems(svc mrp.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "mrp service unavailable"))
			return
		}

		productID, err := validators.RequireQueryUUID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListBOMItems(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, rows, false)
	}
}

type bomItemCreateRequest struct {
	ProductID          uuid.UUID       `json:"product_id" validate:"required"`
	ComponentProductID uuid.UUID       `json:"component_product_id" validate:"required"`
	Quantity           decimal.Decimal `json:"quantity"`
	Unit               string          `json:"unit"`
	Notes              *string         `json:"notes,omitempty"`
}

func (req bomItemCreateRequest) toInput() mrp.CreateBOMItemInput {
	return mrp.CreateBOMItemInput{
		ProductID:          req.ProductID,
		ComponentProductID: req.ComponentProductID,
		Quantity:           req.Quantity,
		Unit:               strings.TrimSpace(req.Unit),
		Notes:              req.Notes,
	}
}

// MRPCreateBOMItem adds a component line to a product's bill of materials.
func MRPCreateBOMItem(svc mrp.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "mrp service unavailable"))
			return
		}

		var payload bomItemCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateBOMItem(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}
