package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

var (
	// Bad input, rejected before any I/O
	ErrInvalidPeriod      = errors.New("invalid report period")
	ErrMissingCredentials = domain.ErrMissingCredentials

	// External dependency failure, retryable by the caller
	ErrDataSourceUnavailable = errors.New("data source unavailable")

	// Report computed but a derived metric is undefined
	ErrDegenerateReport = errors.New("degenerate report")

	// Seller prerequisites
	ErrSellerNotFound       = errors.New("seller not found")
	ErrOzonNotConnected     = errors.New("ozon account is not connected")
	ErrSubscriptionInactive = errors.New("subscription is not active")
	ErrSellerLookup         = errors.New("error fetching seller")
)

// Data sets fetched by the aggregator
const (
	DataSetAnalytics = "analytics"
	DataSetLogistics = "logistics"
	DataSetCatalog   = "catalog"
)

// ReportError is a report failure with the API error code and, for data
// source failures, the data set that failed.
type ReportError struct {
	Err     error
	Code    string
	DataSet string
	Details string
	cause   error
}

func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is/As.
func (e *ReportError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func newUnavailableError(dataSet string, cause error) *ReportError {
	return &ReportError{
		Err:     ErrDataSourceUnavailable,
		Code:    apiErrors.ErrExternalService,
		DataSet: dataSet,
		Details: fmt.Sprintf("failed to fetch %s", dataSet),
		cause:   cause,
	}
}
