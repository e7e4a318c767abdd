package backoffice

import (
	"context"
	"io"

	"github.com/estoquelab/painel-vendas-api/infrastructure/integrator/backoffice/backofficeclient"
	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator.go -package=mocks

// Integrator é a fachada usada pelos casos de uso para conversar com o
// backoffice. Nenhuma operação é repetida automaticamente: uma falha é
// devolvida ao chamador e exige nova iniciativa do usuário.
type Integrator interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int, input domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
	UploadProductsCSV(ctx context.Context, filename string, file io.Reader) ([]domain.Product, error)
	ListSales(ctx context.Context, filters *domain.PeriodFilters) ([]domain.Sale, error)
	CreateSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error)
}

type BackofficeService struct {
	cfg    *config.Config
	Client backofficeclient.Client
}

func New(cfg *config.Config, client backofficeclient.Client) Integrator {
	return &BackofficeService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BackofficeService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.Client.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "backoffice: falha ao listar produtos")
	}

	return products, nil
}

func (s *BackofficeService) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	product, err := s.Client.CreateProduct(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "backoffice: falha ao criar produto")
	}

	return product, nil
}

func (s *BackofficeService) UpdateProduct(ctx context.Context, productID int, input domain.ProductInput) (*domain.Product, error) {
	product, err := s.Client.UpdateProduct(ctx, productID, input)
	if err != nil {
		return nil, errors.Wrapf(err, "backoffice: falha ao atualizar produto %d", productID)
	}

	return product, nil
}

func (s *BackofficeService) DeleteProduct(ctx context.Context, productID int) error {
	if err := s.Client.DeleteProduct(ctx, productID); err != nil {
		return errors.Wrapf(err, "backoffice: falha ao remover produto %d", productID)
	}

	return nil
}

func (s *BackofficeService) UploadProductsCSV(ctx context.Context, filename string, file io.Reader) ([]domain.Product, error) {
	created, err := s.Client.UploadProductsCSV(ctx, filename, file)
	if err != nil {
		return nil, errors.Wrap(err, "backoffice: falha ao importar produtos via CSV")
	}

	return created, nil
}

func (s *BackofficeService) ListSales(ctx context.Context, filters *domain.PeriodFilters) ([]domain.Sale, error) {
	sales, err := s.Client.ListSales(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "backoffice: falha ao listar vendas")
	}

	return sales, nil
}

func (s *BackofficeService) CreateSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error) {
	sale, err := s.Client.CreateSale(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "backoffice: falha ao registrar venda")
	}

	return sale, nil
}
