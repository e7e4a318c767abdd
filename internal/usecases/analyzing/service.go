package analyzing

import (
	"context"
	"sync"

	"github.com/estoquelab/painel-vendas-api/infrastructure/integrator/backoffice"
	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/internal/snapshot"
	"github.com/sirupsen/logrus"
)

// Analyzer expõe o snapshot corrente e os agregados derivados dele.
type Analyzer interface {
	Refresh(ctx context.Context) error
	Snapshot() snapshot.Snapshot
	Analytics(ctx context.Context, filters *domain.PeriodFilters) (*domain.Analytics, error)
	Sales(ctx context.Context, filters *domain.PeriodFilters) ([]domain.Sale, error)
	RegisterSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error)
}

type Service struct {
	cfg        *config.Config
	backoffice backoffice.Integrator
	store      *snapshot.Store
}

// NewService cria o serviço de análise sobre o snapshot em memória.
func NewService(cfg *config.Config, integrator backoffice.Integrator, store *snapshot.Store) Analyzer {
	return &Service{
		cfg:        cfg,
		backoffice: integrator,
		store:      store,
	}
}

// Refresh busca as listas completas de produtos e vendas do backoffice e
// substitui o snapshot por inteiro. O token de sequência é emitido antes
// dos fetches: se um refresh mais novo terminar primeiro, este resultado
// é descartado em vez de sobrescrever dados mais frescos.
func (s *Service) Refresh(ctx context.Context) error {
	token := s.store.Begin()

	var (
		products    []domain.Product
		sales       []domain.Sale
		productsErr error
		salesErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		products, productsErr = s.backoffice.ListProducts(ctx)
	}()

	go func() {
		defer wg.Done()
		sales, salesErr = s.backoffice.ListSales(ctx, nil)
	}()

	wg.Wait()

	if productsErr != nil {
		logrus.WithError(productsErr).Error("Erro ao buscar produtos do backoffice")
		return productsErr
	}

	if salesErr != nil {
		logrus.WithError(salesErr).Error("Erro ao buscar vendas do backoffice")
		return salesErr
	}

	if !s.store.Replace(token, products, sales) {
		logrus.WithFields(logrus.Fields{
			"token": token,
		}).Info("Resultado de refresh obsoleto descartado: um fetch mais novo já foi aplicado")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"products": len(products),
		"sales":    len(sales),
	}).Info("Snapshot de produtos e vendas atualizado")

	return nil
}

func (s *Service) Snapshot() snapshot.Snapshot {
	return s.store.Current()
}

// ensureLoaded garante um primeiro snapshot antes de qualquer derivação.
func (s *Service) ensureLoaded(ctx context.Context) error {
	if !s.store.IsEmpty() {
		return nil
	}

	return s.Refresh(ctx)
}

// Analytics recalcula o agregado por inteiro a partir do snapshot
// corrente, aplicando o filtro de período antes da agregação. Nenhum
// estado é mantido entre chamadas.
func (s *Service) Analytics(ctx context.Context, filters *domain.PeriodFilters) (*domain.Analytics, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	snap := s.store.Current()

	filtered := FilterByPeriod(snap.Sales, filters)
	analytics := Aggregate(filtered, snap.Products)
	analytics.Filters = filters

	return analytics, nil
}

// Sales devolve as vendas do snapshot contidas no período.
func (s *Service) Sales(ctx context.Context, filters *domain.PeriodFilters) ([]domain.Sale, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	snap := s.store.Current()
	return FilterByPeriod(snap.Sales, filters), nil
}

// RegisterSale registra a venda no backoffice e dispara o refresh
// completo do snapshot. O refresh falhando, o snapshot anterior é
// retido e o erro apenas registrado: a venda em si já foi gravada.
func (s *Service) RegisterSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error) {
	sale, err := s.backoffice.CreateSale(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Venda registrada, mas o refresh do snapshot falhou")
	}

	return sale, nil
}
