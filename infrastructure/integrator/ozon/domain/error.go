package ozondomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the error body of the Seller API.
type ErrorResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Details []interface{} `json:"details"`
}

// APIError is a non-2xx answer of the Seller API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ozon %s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("ozon %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsUnauthorized reports whether the credentials were rejected.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRetryable reports whether the same request may succeed later.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type RolesResponse struct {
	Roles []Role `json:"roles"`
}

type Role struct {
	Name    string   `json:"name"`
	Methods []string `json:"methods"`
}
