package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/account"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/subscribing"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

type RegisterSellerRequest struct {
	TelegramID int64 `json:"telegram_id"`
}

type ConnectOzonRequest struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
}

// SellerResponse never carries the api key in clear.
type SellerResponse struct {
	TelegramID            int64                     `json:"telegram_id"`
	IsActive              bool                      `json:"is_active"`
	OzonConnected         bool                      `json:"ozon_connected"`
	ClientID              string                    `json:"client_id,omitempty"`
	APIKeyMasked          string                    `json:"api_key_masked,omitempty"`
	TrialStartedAt        *time.Time                `json:"trial_started_at,omitempty"`
	SubscriptionExpiresAt *time.Time                `json:"subscription_expires_at,omitempty"`
	Subscription          domain.SubscriptionStatus `json:"subscription"`
	CreatedAt             time.Time                 `json:"created_at"`
}

func newSellerResponse(seller *domain.Seller, status domain.SubscriptionStatus) SellerResponse {
	resp := SellerResponse{
		TelegramID:            seller.TelegramID,
		IsActive:              seller.IsActive,
		OzonConnected:         seller.OzonConnected(),
		TrialStartedAt:        seller.TrialStartedAt,
		SubscriptionExpiresAt: seller.SubscriptionExpiresAt,
		Subscription:          status,
		CreatedAt:             seller.CreatedAt,
	}
	if seller.Credentials != nil {
		resp.ClientID = seller.Credentials.ClientID
		resp.APIKeyMasked = seller.Credentials.MaskedKey()
	}
	return resp
}

// RegisterSeller answers 201 for a new seller and 200 when it already existed.
func RegisterSeller(accounts account.AccountService, subscriptions subscribing.SubscriptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RegisterSellerRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", nil)
			return
		}

		seller, created, err := accounts.RegisterSeller(r.Context(), req.TelegramID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}

		writeJSON(w, status, newSellerResponse(seller, subscriptions.Status(seller, time.Now().UTC())))
	})
}

func GetSeller(accounts account.AccountService, subscriptions subscribing.SubscriptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		seller, err := accounts.GetSeller(r.Context(), telegramID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSellerResponse(seller, subscriptions.Status(seller, time.Now().UTC())))
	})
}

func ConnectOzon(accounts account.AccountService, subscriptions subscribing.SubscriptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req ConnectOzonRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", nil)
			return
		}

		seller, err := accounts.ConnectOzon(r.Context(), telegramID, domain.Credentials{
			ClientID: req.ClientID,
			APIKey:   req.APIKey,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSellerResponse(seller, subscriptions.Status(seller, time.Now().UTC())))
	})
}
