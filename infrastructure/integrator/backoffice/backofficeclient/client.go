package backofficeclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/domain"
)

// Client é o contrato de baixo nível com a API do backoffice, que é dona
// da persistência e das regras de negócio de produtos e vendas.
type Client interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int, input domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
	UploadProductsCSV(ctx context.Context, filename string, file io.Reader) ([]domain.Product, error)
	ListSales(ctx context.Context, filters *domain.PeriodFilters) ([]domain.Sale, error)
	CreateSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error)
}

type BackofficeClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente HTTP do backoffice.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Backoffice.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &BackofficeClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
