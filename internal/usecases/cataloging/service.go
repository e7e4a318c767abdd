package cataloging

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/estoquelab/painel-vendas-api/infrastructure/integrator/backoffice"
	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Campos obrigatórios no cabeçalho do CSV de importação.
var requiredCSVFields = []string{"name", "description", "price", "brand", "category_id"}

// ErrInvalidCSV indica um arquivo de importação rejeitado antes do envio.
var ErrInvalidCSV = errors.New("arquivo CSV inválido")

// Cataloger expõe as operações de catálogo. Toda mutação bem-sucedida
// dispara o refresh completo do snapshot: não existe atualização
// incremental de cache.
type Cataloger interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int, input domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
	ImportProductsCSV(ctx context.Context, filename string, file io.Reader) ([]domain.Product, error)
}

type Service struct {
	cfg        *config.Config
	backoffice backoffice.Integrator
	analyzer   analyzing.Analyzer
}

func NewService(cfg *config.Config, integrator backoffice.Integrator, analyzer analyzing.Analyzer) Cataloger {
	return &Service{
		cfg:        cfg,
		backoffice: integrator,
		analyzer:   analyzer,
	}
}

// ListProducts devolve o catálogo do snapshot corrente.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.analyzer.Snapshot().Version == 0 {
		if err := s.analyzer.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	return s.analyzer.Snapshot().Products, nil
}

func (s *Service) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	product, err := s.backoffice.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	s.refreshAfterMutation(ctx, "create_product")
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, productID int, input domain.ProductInput) (*domain.Product, error) {
	product, err := s.backoffice.UpdateProduct(ctx, productID, input)
	if err != nil {
		return nil, err
	}

	s.refreshAfterMutation(ctx, "update_product")
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, productID int) error {
	if err := s.backoffice.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	s.refreshAfterMutation(ctx, "delete_product")
	return nil
}

// ImportProductsCSV valida a extensão e o cabeçalho do arquivo antes de
// encaminhar o conteúdo bruto ao backoffice, que é quem processa as
// linhas. A validação local evita uma ida inútil ao servidor com um
// arquivo que seria rejeitado.
func (s *Service) ImportProductsCSV(ctx context.Context, filename string, file io.Reader) ([]domain.Product, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil, errors.Wrap(ErrInvalidCSV, "extensão esperada: .csv")
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo de importação")
	}

	if err := validateCSVHeader(content); err != nil {
		return nil, err
	}

	created, err := s.backoffice.UploadProductsCSV(ctx, filename, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"created":  len(created),
	}).Info("Importação de produtos via CSV concluída")

	s.refreshAfterMutation(ctx, "import_csv")
	return created, nil
}

func validateCSVHeader(content []byte) error {
	reader := csv.NewReader(bytes.NewReader(content))

	header, err := reader.Read()
	if err != nil {
		return errors.Wrap(ErrInvalidCSV, "cabeçalho ausente ou ilegível")
	}

	present := make(map[string]bool, len(header))
	for _, field := range header {
		present[strings.TrimSpace(strings.ToLower(field))] = true
	}

	var missing []string
	for _, field := range requiredCSVFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return errors.Wrapf(ErrInvalidCSV, "campos obrigatórios ausentes: %s", strings.Join(missing, ", "))
	}

	return nil
}

// refreshAfterMutation recarrega as listas completas depois de qualquer
// mutação. Se o refresh falhar, o snapshot anterior é retido; a mutação
// em si já foi aplicada pelo backoffice.
func (s *Service) refreshAfterMutation(ctx context.Context, operation string) {
	if err := s.analyzer.Refresh(ctx); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"operation": operation,
		}).Warn("Mutação aplicada, mas o refresh do snapshot falhou")
	}
}
