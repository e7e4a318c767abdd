package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/estoquelab/painel-vendas-api/infrastructure/integrator/backoffice/mocks"
	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/internal/snapshot"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockIntegrator, *snapshot.Store) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	store := snapshot.NewStore()

	service := NewService(&config.Config{}, integrator, store).(*Service)
	return service, integrator, store
}

func TestService_Refresh(t *testing.T) {
	service, integrator, store := newTestService(t)

	products := []domain.Product{{ID: 1, Name: "Tênis Runner", Brand: "Alfa"}}
	sales := []domain.Sale{{ID: 1, ProductID: 1, Quantity: 2, TotalPrice: 400.0, Date: domain.NewDate(2024, time.January, 10)}}

	integrator.EXPECT().ListProducts(gomock.Any()).Return(products, nil)
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(sales, nil)

	err := service.Refresh(context.Background())
	require.NoError(t, err)

	snap := store.Current()
	assert.Equal(t, products, snap.Products)
	assert.Equal(t, sales, snap.Sales)
	assert.Equal(t, uint64(1), snap.Version)
	assert.False(t, snap.RefreshedAt.IsZero())
}

func TestService_Refresh_ErroDoBackofficePreservaSnapshotAnterior(t *testing.T) {
	service, integrator, store := newTestService(t)

	products := []domain.Product{{ID: 1, Name: "Tênis Runner", Brand: "Alfa"}}

	integrator.EXPECT().ListProducts(gomock.Any()).Return(products, nil)
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(nil, nil)
	require.NoError(t, service.Refresh(context.Background()))

	// Segundo refresh falha: o snapshot anterior permanece intacto
	integrator.EXPECT().ListProducts(gomock.Any()).Return(nil, errors.New("backoffice indisponível"))
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(nil, nil)

	err := service.Refresh(context.Background())
	require.Error(t, err)

	snap := store.Current()
	assert.Equal(t, products, snap.Products)
	assert.Equal(t, uint64(1), snap.Version)
}

func TestService_Analytics_CarregaSnapshotSobDemanda(t *testing.T) {
	service, integrator, _ := newTestService(t)

	products := []domain.Product{{ID: 1, Name: "Tênis Runner", Brand: "Alfa"}}
	sales := []domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 2, TotalPrice: 400.0, Date: domain.NewDate(2024, time.January, 10)},
		{ID: 2, ProductID: 1, Quantity: 1, TotalPrice: 200.0, Date: domain.NewDate(2024, time.February, 10)},
	}

	integrator.EXPECT().ListProducts(gomock.Any()).Return(products, nil)
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(sales, nil)

	analytics, err := service.Analytics(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.SalesCount)
	assert.InDelta(t, 600.0, analytics.TotalRevenue, 0.001)
	assert.Nil(t, analytics.Filters)
}

func TestService_Analytics_AplicaFiltroDePeriodo(t *testing.T) {
	service, integrator, _ := newTestService(t)

	products := []domain.Product{{ID: 1, Name: "Tênis Runner", Brand: "Alfa"}}
	sales := []domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 2, TotalPrice: 400.0, Date: domain.NewDate(2024, time.January, 10)},
		{ID: 2, ProductID: 1, Quantity: 1, TotalPrice: 200.0, Date: domain.NewDate(2024, time.February, 10)},
	}

	integrator.EXPECT().ListProducts(gomock.Any()).Return(products, nil)
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(sales, nil)

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	filters := &domain.PeriodFilters{StartDate: &start}

	analytics, err := service.Analytics(context.Background(), filters)
	require.NoError(t, err)

	assert.Equal(t, 1, analytics.SalesCount)
	assert.InDelta(t, 200.0, analytics.TotalRevenue, 0.001)
	assert.Equal(t, filters, analytics.Filters)
}

func TestService_RegisterSale_DisparaRefreshCompleto(t *testing.T) {
	service, integrator, store := newTestService(t)

	input := domain.SaleInput{ProductID: 1, Quantity: 2, TotalPrice: 400.0, Date: domain.NewDate(2024, time.January, 10)}
	created := &domain.Sale{ID: 10, ProductID: 1, Quantity: 2, TotalPrice: 400.0, Date: input.Date}

	integrator.EXPECT().CreateSale(gomock.Any(), input).Return(created, nil)
	integrator.EXPECT().ListProducts(gomock.Any()).Return([]domain.Product{{ID: 1}}, nil)
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return([]domain.Sale{*created}, nil)

	sale, err := service.RegisterSale(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, created, sale)

	snap := store.Current()
	require.Len(t, snap.Sales, 1)
	assert.Equal(t, 10, snap.Sales[0].ID)
}

func TestService_RegisterSale_FalhaNoRefreshNaoDerrubaAVenda(t *testing.T) {
	service, integrator, _ := newTestService(t)

	input := domain.SaleInput{ProductID: 1, Quantity: 1, TotalPrice: 50.0, Date: domain.NewDate(2024, time.March, 1)}
	created := &domain.Sale{ID: 11, ProductID: 1, Quantity: 1, TotalPrice: 50.0, Date: input.Date}

	integrator.EXPECT().CreateSale(gomock.Any(), input).Return(created, nil)
	integrator.EXPECT().ListProducts(gomock.Any()).Return(nil, errors.New("backoffice indisponível"))
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(nil, nil)

	sale, err := service.RegisterSale(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, created, sale)
}
