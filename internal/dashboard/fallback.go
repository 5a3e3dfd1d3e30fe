package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fallbackSummary is the sample payload served when the aggregation store is
// unreachable and the degraded fallback is enabled. The trend covers the three
// months leading up to now so the shape matches a live response.
func fallbackSummary(now time.Time) *Summary {
	revenue := decimal.NewFromFloat(45231.89)
	expenses := decimal.NewFromFloat(32190.45)

	trend := make([]SalesTrendPoint, 0, 3)
	for i := 2; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		trend = append(trend, SalesTrendPoint{
			Month:      month.Format(monthLayout),
			TotalSales: decimal.NewFromInt(int64(10000 + (2-i)*2500)),
			OrderCount: 20 + (2-i)*2,
		})
	}

	return &Summary{
		FinancialKPIs: FinancialKPIs{
			TotalRevenue:  revenue,
			TotalExpenses: expenses,
			ProfitLoss:    revenue.Sub(expenses),
		},
		ActiveOrders:  24,
		LowStockItems: 12,
		SalesTrend:    trend,
		Notifications: []Notification{
			{ID: uuid.New(), Message: "Low stock on item: Widget A", Date: now},
			{ID: uuid.New(), Message: "New order received from Acme Corp", Date: now},
		},
	}
}
