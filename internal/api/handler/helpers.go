package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/account"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/subscribing"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
	"github.com/vfg2006/ozon-logistics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Warn("error encoding response")
	}
}

// decodeBody reads a JSON body; an empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func telegramIDParam(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("telegram_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("telegram_id must be a positive integer")
	}
	return id, nil
}

// writeServiceError maps the typed use case errors to the API error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		reportErr  *reporting.ReportError
		accountErr *account.AccountError
		subErr     *subscribing.SubscriptionError
		authErr    *authenticating.AuthError
	)

	switch {
	case errors.As(err, &reportErr):
		// The cause stays in the log, it may carry upstream response bodies.
		message := reportErr.Err.Error()
		if reportErr.Details != "" {
			message += ": " + reportErr.Details
		}
		var details any
		if reportErr.DataSet != "" {
			details = map[string]string{"data_set": reportErr.DataSet}
		}
		logger.Warn("report request failed")
		apiErrors.WriteError(w, reportErr.Code, message, details)
	case errors.As(err, &accountErr):
		logger.Warn("seller request failed")
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
	case errors.As(err, &subErr):
		logger.Warn("subscription request failed")
		apiErrors.WriteError(w, subErr.Code, subErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		logger.Error("unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
	}
}
