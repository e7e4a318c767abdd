package handler

import (
	"net/http"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/estoquelab/painel-vendas-api/pkg/apiErrors"
	"github.com/estoquelab/painel-vendas-api/pkg/log"
	"github.com/estoquelab/painel-vendas-api/pkg/utils"
)

func ListSales(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := periodFilters(w, r)
		if !ok {
			return
		}

		sales, err := service.Sales(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("Erro ao listar vendas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar vendas no backoffice", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func CreateSale(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.SaleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", fieldErrs)
			return
		}

		sale, err := service.RegisterSale(r.Context(), input)
		if err != nil {
			logger.WithError(err).Error("Erro ao registrar venda")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao registrar venda no backoffice", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sale_id":    sale.ID,
			"product_id": sale.ProductID,
		}).Info("Venda registrada")
		writeJSON(w, http.StatusCreated, sale)
	})
}

// periodFilters monta o período a partir dos parâmetros start_date e
// end_date da query string. Parâmetro ausente significa lado ilimitado.
func periodFilters(w http.ResponseWriter, r *http.Request) (*domain.PeriodFilters, bool) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido: esperado YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido: esperado YYYY-MM-DD", nil)
		return nil, false
	}

	if startDate == nil && endDate == nil {
		return nil, true
	}

	return &domain.PeriodFilters{StartDate: startDate, EndDate: endDate}, true
}
