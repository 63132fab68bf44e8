package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

// Pinger is implemented by the database connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler reports liveness and, when a database is wired, its reachability.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: database unreachable")
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "database unreachable", nil)
				return
			}
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
