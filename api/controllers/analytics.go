package controllers

import (
	"net/http"
	"time"

	"github.com/calderasoft/erp-backend/api/responses"
	"github.com/calderasoft/erp-backend/api/validators"
	"github.com/calderasoft/erp-backend/internal/analytics"
	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
)

// AnalyticsReport runs one of the canned reports selected by the report query
// parameter. startDate/endDate narrow the window where the report supports it.
func AnalyticsReport(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		raw := validators.ParseQueryString(r, "report")
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "report query parameter is required"))
			return
		}
		kind, err := enums.ParseReportKind(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid report type"))
			return
		}

		start, err := validators.ParseQueryDate(r, "startDate", time.Time{})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "endDate", time.Time{})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Report(r.Context(), kind, start, end)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
