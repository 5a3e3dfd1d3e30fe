package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
	"github.com/calderasoft/erp-backend/pkg/logger"
	"github.com/calderasoft/erp-backend/pkg/redis"
)

const (
	trendWindow    = 180 * 24 * time.Hour
	monthLayout    = "2006-01"
	alertLimit     = 5
	cacheKeySuffix = "dashboard"
)

type service struct {
	repo             Repository
	logg             *logger.Logger
	cache            redis.Cache
	cacheTTL         time.Duration
	degradedFallback bool
	now              func() time.Time
}

// NewService builds the summary service. A nil cache disables caching
// entirely; the summary is then recomputed on every request. When
// degradedFallback is enabled, a failed aggregation serves the static sample
// summary instead of an error.
func NewService(repo Repository, logg *logger.Logger, cache redis.Cache, cacheTTL time.Duration, degradedFallback bool) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{
		repo:             repo,
		logg:             logg,
		cache:            cache,
		cacheTTL:         cacheTTL,
		degradedFallback: degradedFallback,
		now:              func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Summary(ctx context.Context) (*SummaryResult, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return &SummaryResult{Summary: cached}, nil
	}

	summary, err := s.build(ctx)
	if err != nil {
		if !s.degradedFallback {
			return nil, err
		}
		if s.logg != nil {
			fctx := s.logg.WithFields(ctx, map[string]any{"error": err.Error()})
			s.logg.Warn(fctx, "dashboard aggregation unavailable, serving fallback summary")
		}
		return &SummaryResult{Summary: fallbackSummary(s.now()), Degraded: true}, nil
	}

	s.toCache(ctx, summary)
	return &SummaryResult{Summary: summary}, nil
}

func (s *service) build(ctx context.Context) (*Summary, error) {
	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum revenue")
	}
	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum expenses")
	}
	activeOrders, err := s.repo.ActiveOrderCount(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count active orders")
	}
	lowStock, err := s.repo.LowStockCount(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count low stock items")
	}
	orders, err := s.repo.OrdersSince(ctx, s.now().Add(-trendWindow))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trend orders")
	}
	events, err := s.repo.PendingAlerts(ctx, alertLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pending alerts")
	}

	notifications := make([]Notification, 0, len(events))
	for _, event := range events {
		notifications = append(notifications, Notification{
			ID:      event.ID,
			Message: event.Description,
			Date:    event.CreatedAt,
		})
	}

	return &Summary{
		FinancialKPIs: FinancialKPIs{
			TotalRevenue:  revenue,
			TotalExpenses: expenses,
			ProfitLoss:    revenue.Sub(expenses),
		},
		ActiveOrders:  activeOrders,
		LowStockItems: lowStock,
		SalesTrend:    bucketByMonth(orders),
		Notifications: notifications,
	}, nil
}

// bucketByMonth folds orders into YYYY-MM buckets, oldest first.
func bucketByMonth(orders []OrderSlice) []SalesTrendPoint {
	buckets := map[string]*SalesTrendPoint{}
	for _, order := range orders {
		key := order.OrderDate.Format(monthLayout)
		point, ok := buckets[key]
		if !ok {
			point = &SalesTrendPoint{Month: key}
			buckets[key] = point
		}
		point.TotalSales = point.TotalSales.Add(order.TotalAmount)
		point.OrderCount++
	}

	trend := make([]SalesTrendPoint, 0, len(buckets))
	for _, point := range buckets {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	return trend
}

func (s *service) fromCache(ctx context.Context) *Summary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(cacheKeySuffix))
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			fctx := s.logg.WithFields(ctx, map[string]any{"error": err.Error()})
			s.logg.Warn(fctx, "dashboard cache read failed")
		}
		return nil
	}
	var summary Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		if s.logg != nil {
			fctx := s.logg.WithFields(ctx, map[string]any{"error": err.Error()})
			s.logg.Warn(fctx, "dashboard cache entry corrupt, recomputing")
		}
		return nil
	}
	return &summary
}

func (s *service) toCache(ctx context.Context, summary *Summary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey(cacheKeySuffix), string(raw), s.cacheTTL); err != nil && s.logg != nil {
		fctx := s.logg.WithFields(ctx, map[string]any{"error": err.Error()})
		s.logg.Warn(fctx, "dashboard cache write failed")
	}
}
