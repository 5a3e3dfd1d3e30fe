package controllers

import (
	"net/http"

	"github.com/calderasoft/erp-backend/api/responses"
	"github.com/calderasoft/erp-backend/internal/dashboard"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

// DashboardSummary returns the aggregated dashboard payload.
func DashboardSummary(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		result, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, result.Summary, result.Degraded)
	}
}
