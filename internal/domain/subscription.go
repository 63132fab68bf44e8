package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionState string

const (
	SubscriptionStateTrial   SubscriptionState = "trial"
	SubscriptionStateActive  SubscriptionState = "active"
	SubscriptionStateExpired SubscriptionState = "expired"
)

// SubscriptionStatus is the computed access state of a seller at a given moment.
type SubscriptionStatus struct {
	State       SubscriptionState `json:"state"`
	TrialEndsAt *time.Time        `json:"trial_ends_at,omitempty"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
	DaysLeft    int               `json:"days_left"`
}

func (s SubscriptionStatus) Active() bool {
	return s.State == SubscriptionStateTrial || s.State == SubscriptionStateActive
}

// SubscriptionPlan is a paid tier.
type SubscriptionPlan struct {
	Code     string          `json:"code"`
	Months   int             `json:"months"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// MonthlyPrice is the effective price per month, rounded to whole currency units.
func (p SubscriptionPlan) MonthlyPrice() decimal.Decimal {
	if p.Months <= 0 {
		return p.Price
	}
	return p.Price.Div(decimal.NewFromInt(int64(p.Months))).Round(0)
}
