package analytics

import (
	"context"
	"time"

	"github.com/calderasoft/erp-backend/pkg/enums"
)

// Repository runs the read-only report queries. Reports never mutate
// state, so there is no transactional variant.
type Repository interface {
	SalesByProduct(ctx context.Context, start, end time.Time) ([]SalesByProductRow, error)
	SalesByCustomer(ctx context.Context, start, end time.Time) ([]SalesByCustomerRow, error)
	InventoryTurnover(ctx context.Context, start, end time.Time) ([]InventoryTurnoverRow, error)
	ProjectProfitability(ctx context.Context) ([]ProjectProfitabilityRow, error)
}

type Service interface {
	Report(ctx context.Context, kind enums.ReportKind, start, end time.Time) (*Report, error)
}
