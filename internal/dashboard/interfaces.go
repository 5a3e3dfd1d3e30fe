package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

// Repository exposes the aggregate reads behind the summary endpoint.
type Repository interface {
	Revenue(ctx context.Context) (decimal.Decimal, error)
	Expenses(ctx context.Context) (decimal.Decimal, error)
	ActiveOrderCount(ctx context.Context) (int64, error)
	LowStockCount(ctx context.Context) (int64, error)
	OrdersSince(ctx context.Context, since time.Time) ([]OrderSlice, error)
	PendingAlerts(ctx context.Context, limit int) ([]models.ProcessEvent, error)
}

type Service interface {
	Summary(ctx context.Context) (*SummaryResult, error)
}
