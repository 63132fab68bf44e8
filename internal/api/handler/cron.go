package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

const (
	CronJobTypeTrialExpiry = "trial-expiry"
	CronJobTypeAll         = "all"
)

// CronJob is a scheduled sync that can also be started on demand.
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices indexes the jobs by the type used in the URL.
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("type", cronType).Info("manual cron run requested")

		started := map[string]bool{}
		switch job, ok := services[cronType]; {
		case cronType == CronJobTypeAll:
			for t, job := range services {
				started[t] = job.TriggerManualSync()
			}
		case ok:
			started[cronType] = job.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type", map[string]any{
				"accepted": append(services.types(), CronJobTypeAll),
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"type":    cronType,
			"started": started,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for t, job := range services {
			status[t] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
