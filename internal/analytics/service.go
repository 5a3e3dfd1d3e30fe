package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/calderasoft/erp-backend/pkg/enums"
	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// defaultStart is the beginning of the reporting window when the caller
// does not narrow it.
var defaultStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

type service struct {
	repo Repository
}

func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("analytics repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Report(ctx context.Context, kind enums.ReportKind, start, end time.Time) (*Report, error) {
	if start.IsZero() {
		start = defaultStart
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if end.Before(start) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date precedes start date")
	}

	var (
		data any
		err  error
	)
	switch kind {
	case enums.ReportSalesByProduct:
		data, err = s.repo.SalesByProduct(ctx, start, end)
	case enums.ReportSalesByCustomer:
		data, err = s.repo.SalesByCustomer(ctx, start, end)
	case enums.ReportInventoryTurnover:
		data, err = s.repo.InventoryTurnover(ctx, start, end)
	case enums.ReportProjectProfitability:
		data, err = s.repo.ProjectProfitability(ctx)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid report type").
			WithDetails(map[string]any{"report": kind.String()})
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "generate report")
	}

	return &Report{
		Report:    kind,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Data:      data,
	}, nil
}
