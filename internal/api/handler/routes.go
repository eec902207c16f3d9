package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/tracking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Report(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/data",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
	}
}

func Webhook(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/api/webhook",
			Method:  http.MethodGet,
			Handler: VerifyWebhook(service),
		},
		{
			Path:    "/api/webhook",
			Method:  http.MethodPost,
			Handler: ReceiveWebhook(service),
		},
	}
}

func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/api/tracking/:psid",
			Method:  http.MethodGet,
			Handler: GetCustomerTracking(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
