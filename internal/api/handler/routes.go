package handler

import (
	"net/http"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/api/handler/router"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/scheduler"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/usecases/etljob"
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

func RunJob(service etljob.JobRunner) []router.Route {
	return []router.Route{
		{
			Path:    "/run",
			Method:  http.MethodPost,
			Handler: RunJobHandler(service),
		},
	}
}

func CronJobs(service *scheduler.StatsSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/cron/stats-sync/trigger",
			Method:  http.MethodPost,
			Handler: RunCronJob(service),
		},
		{
			Path:    "/cron/stats-sync/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
