package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/subscribing"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

type ActivateSubscriptionRequest struct {
	Plan string `json:"plan"`
}

// PlanResponse is a plan with its effective price per month, shown next to
// the longer plans.
type PlanResponse struct {
	domain.SubscriptionPlan
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
}

func SubscriptionPlans(service subscribing.SubscriptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plans := service.Plans()
		resp := make([]PlanResponse, 0, len(plans))
		for _, plan := range plans {
			resp = append(resp, PlanResponse{SubscriptionPlan: plan, MonthlyPrice: plan.MonthlyPrice()})
		}
		writeJSON(w, http.StatusOK, map[string]any{"plans": resp})
	})
}

func GetSubscription(service subscribing.SubscriptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		status, err := service.GetStatus(r.Context(), telegramID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	})
}

// ActivateSubscription is called once the payment for a plan is confirmed.
func ActivateSubscription(service subscribing.SubscriptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req ActivateSubscriptionRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", nil)
			return
		}

		status, err := service.Activate(r.Context(), telegramID, req.Plan)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	})
}
