package account

import (
	"errors"
	"fmt"
)

var (
	// Validation
	ErrTelegramIDRequired = errors.New("telegram id is required")
	ErrMissingCredentials = errors.New("client id and api key are required")

	ErrSellerNotFound = errors.New("seller not found")

	// Ozon
	ErrCredentialsRejected = errors.New("ozon rejected the credentials")
	ErrOzonUnavailable     = errors.New("error validating credentials with ozon")

	// Database
	ErrFetchSeller  = errors.New("error fetching seller from database")
	ErrCreateSeller = errors.New("error creating seller")
	ErrUpdateSeller = errors.New("error updating seller")
)

// AccountError carries the API code and the seller involved.
type AccountError struct {
	Err        error
	Code       string
	TelegramID int64
	Details    string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, telegramID int64, details string) *AccountError {
	return &AccountError{
		Err:        err,
		Code:       code,
		TelegramID: telegramID,
		Details:    details,
	}
}
