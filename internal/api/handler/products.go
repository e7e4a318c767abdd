package handler

import (
	"net/http"
	"strconv"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/cataloging"
	"github.com/estoquelab/painel-vendas-api/pkg/apiErrors"
	"github.com/estoquelab/painel-vendas-api/pkg/log"
	"github.com/estoquelab/painel-vendas-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite de tamanho do multipart de importação de produtos
const maxUploadSize = 10 << 20 // 10 MB

func ListProducts(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar produtos no backoffice", nil)
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func CreateProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", fieldErrs)
			return
		}

		product, err := service.CreateProduct(r.Context(), input)
		if err != nil {
			logger.WithError(err).Error("Erro ao criar produto")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao criar produto no backoffice", nil)
			return
		}

		logger.WithField("product_id", product.ID).Info("Produto criado")
		writeJSON(w, http.StatusCreated, product)
	})
}

func UpdateProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		productID, ok := productIDParam(w, r)
		if !ok {
			return
		}

		var input domain.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", fieldErrs)
			return
		}

		product, err := service.UpdateProduct(r.Context(), productID, input)
		if err != nil {
			logger.WithError(err).WithField("product_id", productID).Error("Erro ao atualizar produto")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar produto no backoffice", nil)
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func DeleteProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		productID, ok := productIDParam(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProduct(r.Context(), productID); err != nil {
			logger.WithError(err).WithField("product_id", productID).Error("Erro ao excluir produto")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao excluir produto no backoffice", nil)
			return
		}

		logger.WithField("product_id", productID).Info("Produto excluído")
		w.WriteHeader(http.StatusNoContent)
	})
}

// UploadProducts recebe o CSV de importação e encaminha ao catálogo. O
// arquivo inteiro trafega em memória; o limite de 10 MB cobre com folga
// os catálogos reais.
func UploadProducts(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		importID, _ := utils.GenerateID()
		logger := log.ForContext(r.Context()).WithField("import_id", importID)

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Upload inválido: esperado multipart/form-data", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Campo 'file' ausente no upload", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"size":     header.Size,
		}).Info("Importação de produtos recebida")

		created, err := service.ImportProductsCSV(r.Context(), header.Filename, file)
		if err != nil {
			if errors.Is(err, cataloging.ErrInvalidCSV) {
				logger.WithError(err).Warn("Arquivo CSV rejeitado na validação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCSVFile, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("Erro na importação de produtos")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao importar produtos no backoffice", nil)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	productID, err := strconv.Atoi(params.ByName("id"))
	if err != nil || productID <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de produto inválido", nil)
		return 0, false
	}

	return productID, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("Erro ao serializar resposta")
	}
}
