package handler

import (
	"net/http"

	"github.com/vfg2006/ozon-logistics-api/internal/api/handler/router"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/account"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/subscribing"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Reports(service reporting.ReportService, delivery ReportDelivery) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/periods",
			Method:  http.MethodGet,
			Handler: ReportPeriods(service, delivery),
		},
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: GenerateReport(service, delivery),
		},
		{
			Path:    "/v1/sellers/:telegram_id/reports",
			Method:  http.MethodPost,
			Handler: GenerateSellerReport(service, delivery),
		},
	}
}

func Sellers(accounts account.AccountService, subscriptions subscribing.SubscriptionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sellers",
			Method:  http.MethodPost,
			Handler: RegisterSeller(accounts, subscriptions),
		},
		{
			Path:    "/v1/sellers/:telegram_id",
			Method:  http.MethodGet,
			Handler: GetSeller(accounts, subscriptions),
		},
		{
			Path:    "/v1/sellers/:telegram_id/ozon",
			Method:  http.MethodPut,
			Handler: ConnectOzon(accounts, subscriptions),
		},
	}
}

func Subscriptions(service subscribing.SubscriptionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/subscription/plans",
			Method:  http.MethodGet,
			Handler: SubscriptionPlans(service),
		},
		{
			Path:    "/v1/sellers/:telegram_id/subscription",
			Method:  http.MethodGet,
			Handler: GetSubscription(service),
		},
		{
			Path:    "/v1/sellers/:telegram_id/subscription",
			Method:  http.MethodPost,
			Handler: ActivateSubscription(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
