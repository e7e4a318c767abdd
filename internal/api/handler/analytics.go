package handler

import (
	"net/http"

	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/estoquelab/painel-vendas-api/pkg/apiErrors"
	"github.com/estoquelab/painel-vendas-api/pkg/log"
)

// GetAnalytics devolve o agregado completo do período pedido. O cálculo
// é refeito a cada chamada sobre o snapshot corrente.
func GetAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := periodFilters(w, r)
		if !ok {
			return
		}

		analytics, err := service.Analytics(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("Erro ao calcular os agregados de vendas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados no backoffice", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sales_count": analytics.SalesCount,
			"total_units": analytics.TotalUnits,
		}).Debug("Agregados de vendas calculados")

		writeJSON(w, http.StatusOK, analytics)
	})
}
