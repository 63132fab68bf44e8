package domain

import "strings"

// Credentials is an Ozon Seller API client id / api key pair.
type Credentials struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"-"`
}

// Validate only checks that both parts are present; the marketplace is the
// authority on whether they are valid.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" || strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingCredentials
	}
	return nil
}

// MaskedKey returns the api key with everything but the last 4 characters hidden.
func (c Credentials) MaskedKey() string {
	if len(c.APIKey) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}
