package ozondomain

import "github.com/shopspring/decimal"

// Analytics metrics requested from /v1/analytics/data
const (
	MetricRevenue      = "revenue"
	MetricOrderedUnits = "ordered_units"
	MetricReturns      = "returns"
)

type AnalyticsDataRequest struct {
	DateFrom  string            `json:"date_from"`
	DateTo    string            `json:"date_to"`
	Metrics   []string          `json:"metrics"`
	Dimension []string          `json:"dimension"`
	Filters   []AnalyticsFilter `json:"filters"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

type AnalyticsFilter struct {
	Key   string `json:"key"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

type AnalyticsDataResponse struct {
	Result    AnalyticsResult `json:"result"`
	Timestamp string          `json:"timestamp"`
}

type AnalyticsResult struct {
	Data   []AnalyticsRow    `json:"data"`
	Totals []decimal.Decimal `json:"totals"`
}

type AnalyticsRow struct {
	Dimensions []AnalyticsDimension `json:"dimensions"`
	Metrics    []decimal.Decimal    `json:"metrics"`
}

type AnalyticsDimension struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Total returns the total of the metric at the given request position.
func (r AnalyticsResult) Total(index int) decimal.Decimal {
	if index < 0 || index >= len(r.Totals) {
		return decimal.Zero
	}
	return r.Totals[index]
}

type AverageDeliveryTimeSummaryResponse struct {
	// AverageDeliveryTime is expressed in hours.
	AverageDeliveryTime decimal.Decimal `json:"average_delivery_time"`
	CurrentTariff       *DeliveryTariff `json:"current_tariff,omitempty"`
	LostProfit          decimal.Decimal `json:"lost_profit"`
	PerfectDeliveryTime decimal.Decimal `json:"perfect_delivery_time"`
}

type DeliveryTariff struct {
	Fee        decimal.Decimal `json:"fee"`
	TariffName string          `json:"tariff_status"`
}
