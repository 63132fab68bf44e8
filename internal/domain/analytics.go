package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AnalyticsSummary holds the seller totals reported by the marketplace for a period.
type AnalyticsSummary struct {
	TotalOrders         int             `json:"total_orders"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AverageDeliveryTime decimal.Decimal `json:"average_delivery_time"`
	ReturnRate          decimal.Decimal `json:"return_rate"`
}

func (a AnalyticsSummary) Validate() error {
	if a.TotalOrders < 0 {
		return fmt.Errorf("%w: total_orders is negative (%d)", ErrMalformedRecord, a.TotalOrders)
	}
	if a.TotalRevenue.IsNegative() {
		return fmt.Errorf("%w: total_revenue is negative (%s)", ErrMalformedRecord, a.TotalRevenue)
	}
	if a.AverageDeliveryTime.IsNegative() {
		return fmt.Errorf("%w: average_delivery_time is negative (%s)", ErrMalformedRecord, a.AverageDeliveryTime)
	}
	if a.ReturnRate.IsNegative() || a.ReturnRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: return_rate %s outside [0,1]", ErrMalformedRecord, a.ReturnRate)
	}
	return nil
}
