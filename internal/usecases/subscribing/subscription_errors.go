package subscribing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlan    = errors.New("unknown subscription plan")
	ErrSellerNotFound = errors.New("seller not found")

	ErrFetchSeller        = errors.New("error fetching seller from database")
	ErrUpdateSubscription = errors.New("error updating subscription")
)

type SubscriptionError struct {
	Err     error
	Code    string
	Details string
}

func (e *SubscriptionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

func NewSubscriptionError(err error, code string, details string) *SubscriptionError {
	return &SubscriptionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
