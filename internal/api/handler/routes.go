package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/categorizing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics"
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

func Statistics(service statistics.StatisticsService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/statistics/report",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service),
		},
		{
			Path:    "/v1/statistics/top-sold",
			Method:  http.MethodGet,
			Handler: GetTopSold(service),
		},
		{
			Path:    "/v1/statistics/top-revenue",
			Method:  http.MethodGet,
			Handler: GetTopRevenue(service),
		},
		{
			Path:    "/v1/statistics/top-canceled",
			Method:  http.MethodGet,
			Handler: GetTopCanceled(service),
		},
		{
			Path:    "/v1/statistics/charts/:view",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
	}
}

func Snapshots(repo repository.ReportSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/statistics/snapshots/latest",
			Method:  http.MethodGet,
			Handler: GetLatestSnapshot(repo),
		},
	}
}

func Clients(service categorizing.ProfileService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients/:dni/profile",
			Method:  http.MethodGet,
			Handler: GetClientProfile(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
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
