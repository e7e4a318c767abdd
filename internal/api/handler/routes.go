package handler

import (
	"net/http"

	"github.com/estoquelab/painel-vendas-api/internal/api/handler/router"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/cataloging"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/reporting"
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

func Products(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
		{
			Path:    "/v1/products/upload",
			Method:  http.MethodPost,
			Handler: UploadProducts(service),
		},
	}
}

func Sales(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics",
			Method:  http.MethodGet,
			Handler: GetAnalytics(service),
		},
	}
}

func Report(analyzer analyzing.Analyzer, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: ExportReport(analyzer, reporter),
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
