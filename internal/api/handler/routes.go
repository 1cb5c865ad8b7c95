package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/feedback"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/importing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/sampledata"
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

func Datasets(importer importing.Importer, insighter insighting.Insighter, datasets DatasetStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodPost,
			Handler: UploadDataset(importer),
		},
		{
			Path:    "/v1/datasets/:id/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(insighter),
		},
		{
			Path:    "/v1/datasets/:id/products",
			Method:  http.MethodGet,
			Handler: GetDatasetProducts(datasets),
		},
		{
			Path:    "/v1/datasets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDataset(datasets),
		},
	}
}

func Reports(insighter insighting.Insighter, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/:id/report",
			Method:  http.MethodGet,
			Handler: GetReport(insighter, reporter),
		},
	}
}

func SampleData(generator sampledata.Generator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sample",
			Method:  http.MethodGet,
			Handler: DownloadSampleCSV(generator),
		},
	}
}

func Feedback(collector feedback.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/feedback",
			Method:  http.MethodPost,
			Handler: SubmitFeedback(collector),
		},
		{
			Path:    "/v1/feedback",
			Method:  http.MethodGet,
			Handler: ListFeedback(collector),
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
