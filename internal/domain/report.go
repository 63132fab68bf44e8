package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report warning codes.
const (
	WarningDegenerateReport = "DEGENERATE_REPORT"
)

// ReportSummary holds the metrics derived from the three data sets.
// ProfitMargin is nil when it cannot be computed (zero revenue).
type ReportSummary struct {
	TotalOrders         int              `json:"total_orders"`
	TotalRevenue        decimal.Decimal  `json:"total_revenue"`
	TotalLogisticsCost  decimal.Decimal  `json:"total_logistics_cost"`
	ProfitMargin        *decimal.Decimal `json:"profit_margin"`
	AverageDeliveryTime decimal.Decimal  `json:"average_delivery_time"`
	ReturnRate          decimal.Decimal  `json:"return_rate"`
}

type ReportWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReportDocument is the canonical logistics report handed to renderers.
type ReportDocument struct {
	Period           Period            `json:"period"`
	Summary          ReportSummary     `json:"summary"`
	LogisticsRecords []LogisticsRecord `json:"logistics_records"`
	Products         []ProductRecord   `json:"products"`
	Warnings         []ReportWarning   `json:"warnings,omitempty"`
	GeneratedAt      time.Time         `json:"generated_at"`
}

// HasWarning reports whether the document carries a warning with the given code.
func (d *ReportDocument) HasWarning(code string) bool {
	for _, w := range d.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
