package enums

import "fmt"

// ReportKind names the canned analytics reports.
type ReportKind string

const (
	ReportSalesByProduct       ReportKind = "sales-by-product"
	ReportSalesByCustomer      ReportKind = "sales-by-customer"
	ReportInventoryTurnover    ReportKind = "inventory-turnover"
	ReportProjectProfitability ReportKind = "project-profitability"
)

var validReportKinds = []ReportKind{
	ReportSalesByProduct,
	ReportSalesByCustomer,
	ReportInventoryTurnover,
	ReportProjectProfitability,
}

func (r ReportKind) String() string {
	return string(r)
}

// ParseReportKind converts raw input into a ReportKind.
func ParseReportKind(value string) (ReportKind, error) {
	for _, candidate := range validReportKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report type %q", value)
}
