package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes returned to API clients
const (
	// Authentication (1000-1999)
	ErrInvalidCredentials     = "AUTH_001" // Invalid service credentials
	ErrInvalidToken           = "AUTH_006" // Invalid token
	ErrExpiredToken           = "AUTH_007" // Expired token
	ErrInvalidOzonCredentials = "AUTH_010" // Ozon rejected the client id / api key

	// Validation (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Invalid request
	ErrMissingRequiredData = "VAL_002" // Required data missing
	ErrInvalidFormat       = "VAL_003" // Invalid data format
	ErrInvalidPeriod       = "VAL_004" // Report period out of range
	ErrInvalidPlan         = "VAL_005" // Unknown subscription plan

	// Routing
	ErrNotFound         = "REQ_001"
	ErrMethodNotAllowed = "REQ_002"

	// Sellers and subscriptions (3000-3999)
	ErrSellerNotFound       = "SEL_001"
	ErrOzonNotConnected     = "SEL_002"
	ErrSubscriptionInactive = "SUB_001"

	// Reports (4000-4999)
	ErrDegenerateReport = "REP_001" // Report computed with an undefined metric

	// Server (5000-5999)
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation error
	ErrExternalService   = "SRV_003" // External service error
	ErrCommunication     = "SRV_004" // Communication error
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrExpiredToken:           http.StatusUnauthorized,
	ErrInvalidOzonCredentials: http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrInvalidPeriod:          http.StatusBadRequest,
	ErrInvalidPlan:            http.StatusBadRequest,
	ErrNotFound:               http.StatusNotFound,
	ErrMethodNotAllowed:       http.StatusMethodNotAllowed,
	ErrSellerNotFound:         http.StatusNotFound,
	ErrOzonNotConnected:       http.StatusConflict,
	ErrSubscriptionInactive:   http.StatusPaymentRequired,
	ErrDegenerateReport:       http.StatusUnprocessableEntity,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
	ErrExternalService:        http.StatusBadGateway,
	ErrCommunication:          http.StatusServiceUnavailable,
}

// APIError is the error body returned by every endpoint
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status mapped to an error code.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// IsRetryable reports whether the client may retry the same request later.
func IsRetryable(code string) bool {
	return code == ErrExternalService || code == ErrCommunication
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	if IsRetryable(code) {
		w.Header().Set("Retry-After", "30")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an API error from a Go error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
