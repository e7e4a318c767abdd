package handler

import (
	"fmt"
	"net/http"

	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/reporting"
	"github.com/estoquelab/painel-vendas-api/pkg/apiErrors"
	"github.com/estoquelab/painel-vendas-api/pkg/log"
)

// ExportReport diagrama o relatório em PDF com o mesmo período aplicado
// aos agregados e devolve o documento como download.
func ExportReport(analyzer analyzing.Analyzer, reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := periodFilters(w, r)
		if !ok {
			return
		}

		analytics, err := analyzer.Analytics(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("Erro ao calcular os agregados do relatório")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados no backoffice", nil)
			return
		}

		sales, err := analyzer.Sales(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("Erro ao listar as vendas do relatório")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados no backoffice", nil)
			return
		}

		products := analyzer.Snapshot().Products

		document, err := reporter.BuildReport(products, sales, analytics)
		if err != nil {
			logger.WithError(err).Error("Erro ao diagramar o relatório")
			apiErrors.WriteError(w, apiErrors.ErrReportRender, "Erro ao gerar o relatório em PDF", nil)
			return
		}

		logger.WithFields(log.Fields{
			"bytes":       len(document),
			"sales_count": analytics.SalesCount,
		}).Info("Relatório em PDF gerado")

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reporting.ReportFilename))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(document); err != nil {
			logger.WithError(err).Warn("Erro ao enviar o relatório para o cliente")
		}
	})
}
