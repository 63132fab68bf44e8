package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

var hundred = decimal.NewFromInt(100)

// TotalLogisticsCost sums the record costs exactly.
func TotalLogisticsCost(records []domain.LogisticsRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Cost)
	}
	return total
}

// ProfitMargin returns (revenue - cost) / revenue * 100 rounded half away from
// zero to 2 places. ok is false when revenue is zero.
func ProfitMargin(revenue, logisticsCost decimal.Decimal) (margin decimal.Decimal, ok bool) {
	if revenue.IsZero() {
		return decimal.Zero, false
	}
	return revenue.Sub(logisticsCost).Mul(hundred).Div(revenue).Round(2), true
}

// Synthesize merges the three data sets into a report document. Record and
// product order is preserved. With zero revenue the document is still built,
// without a margin and with a DEGENERATE_REPORT warning, and the returned
// error wraps ErrDegenerateReport.
func Synthesize(
	period domain.Period,
	analytics domain.AnalyticsSummary,
	logistics []domain.LogisticsRecord,
	products []domain.ProductRecord,
	generatedAt time.Time,
) (domain.ReportDocument, error) {
	records := make([]domain.LogisticsRecord, len(logistics))
	copy(records, logistics)

	catalog := make([]domain.ProductRecord, len(products))
	copy(catalog, products)

	totalCost := TotalLogisticsCost(records)

	doc := domain.ReportDocument{
		Period: period,
		Summary: domain.ReportSummary{
			TotalOrders:         analytics.TotalOrders,
			TotalRevenue:        analytics.TotalRevenue,
			TotalLogisticsCost:  totalCost,
			AverageDeliveryTime: analytics.AverageDeliveryTime,
			ReturnRate:          analytics.ReturnRate,
		},
		LogisticsRecords: records,
		Products:         catalog,
		GeneratedAt:      generatedAt,
	}

	margin, ok := ProfitMargin(analytics.TotalRevenue, totalCost)
	if !ok {
		doc.Warnings = append(doc.Warnings, domain.ReportWarning{
			Code:    domain.WarningDegenerateReport,
			Message: "profit margin is undefined for zero revenue",
		})
		return doc, NewReportError(ErrDegenerateReport, apiErrors.ErrDegenerateReport, "total revenue is zero")
	}
	doc.Summary.ProfitMargin = &margin

	return doc, nil
}
