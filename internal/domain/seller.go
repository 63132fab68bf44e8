package domain

import "time"

// Seller is a bot user identified by Telegram id.
type Seller struct {
	ID                    int64        `json:"id"`
	TelegramID            int64        `json:"telegram_id"`
	Credentials           *Credentials `json:"credentials,omitempty"`
	IsActive              bool         `json:"is_active"`
	TrialStartedAt        *time.Time   `json:"trial_started_at"`
	SubscriptionExpiresAt *time.Time   `json:"subscription_expires_at"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

// OzonConnected reports whether the seller stored Ozon credentials.
func (s *Seller) OzonConnected() bool {
	return s.Credentials != nil && s.Credentials.Validate() == nil
}
