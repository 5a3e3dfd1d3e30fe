package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/calderasoft/erp-backend/pkg/db/models"
)

func strptr(s string) *string { return &s }

// fallbackProducts is the static catalog served when the primary store is
// unreachable and degraded mode is enabled.
var fallbackProducts = []models.Product{
	{
		SKU:             "P001",
		Name:            "Basic Widget",
		Description:     strptr("Standard widget for general use"),
		Category:        "Widgets",
		UnitPrice:       decimal.NewFromFloat(19.99),
		StockQuantity:   150,
		ReorderLevel:    30,
		ReorderQuantity: 100,
		LeadTimeDays:    5,
	},
	{
		SKU:             "P002",
		Name:            "Premium Widget",
		Description:     strptr("High-quality widget with extended features"),
		Category:        "Widgets",
		UnitPrice:       decimal.NewFromFloat(39.99),
		StockQuantity:   75,
		ReorderLevel:    20,
		ReorderQuantity: 50,
		LeadTimeDays:    7,
	},
	{
		SKU:             "P003",
		Name:            "Widget Connector",
		Description:     strptr("Connects multiple widgets together"),
		Category:        "Accessories",
		UnitPrice:       decimal.NewFromFloat(9.99),
		StockQuantity:   200,
		ReorderLevel:    50,
		ReorderQuantity: 150,
		LeadTimeDays:    3,
	},
	{
		SKU:             "P004",
		Name:            "Control Panel",
		Description:     strptr("Central control unit for widget systems"),
		Category:        "Electronics",
		UnitPrice:       decimal.NewFromFloat(149.99),
		StockQuantity:   25,
		ReorderLevel:    10,
		ReorderQuantity: 20,
		LeadTimeDays:    10,
	},
	{
		SKU:             "P005",
		Name:            "Power Supply",
		Description:     strptr("Standard power supply for widgets"),
		Category:        "Electronics",
		UnitPrice:       decimal.NewFromFloat(29.99),
		StockQuantity:   100,
		ReorderLevel:    25,
		ReorderQuantity: 75,
		LeadTimeDays:    5,
	},
}

// fallbackCatalog applies the list filters to the static catalog so degraded
// responses honor the same query surface as live ones.
func fallbackCatalog(filters ProductFilters) []models.Product {
	out := make([]models.Product, 0, len(fallbackProducts))
	for _, p := range fallbackProducts {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.LowStock && p.StockQuantity > p.ReorderLevel {
			continue
		}
		out = append(out, p)
	}
	return out
}
