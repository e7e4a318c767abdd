package reporting

import (
	"testing"
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chartRendererStub struct {
	render func(months []domain.MonthRanking) ([]byte, error)
	calls  int
}

func (s *chartRendererStub) RenderMonthlyRevenue(months []domain.MonthRanking) ([]byte, error) {
	s.calls++
	return s.render(months)
}

func reportConfig() *config.Config {
	return &config.Config{
		Report: config.Report{Title: "Relatório de Performance"},
	}
}

func reportFixture() ([]domain.Product, []domain.Sale, *domain.Analytics) {
	products := []domain.Product{
		{ID: 1, Name: "Tênis Runner", Brand: "Alfa", Price: 199.90, CategoryID: 1},
		{ID: 2, Name: "Camiseta Básica", Brand: "Beta", Price: 49.90, CategoryID: 2},
	}
	sales := []domain.Sale{
		{ID: 1, ProductID: 1, Quantity: 2, TotalPrice: 400.0, Date: domain.NewDate(2024, time.January, 10)},
		{ID: 2, ProductID: 2, Quantity: 5, TotalPrice: 250.0, Date: domain.NewDate(2024, time.February, 20)},
	}

	return products, sales, analyzing.Aggregate(sales, products)
}

func newTestReporter(charts ChartRenderer) *Service {
	service := NewService(reportConfig(), charts)
	service.now = func() time.Time {
		return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	return service
}

func TestService_BuildReport_GeraPDFCompleto(t *testing.T) {
	products, sales, analytics := reportFixture()
	service := newTestReporter(NewBarChartRenderer())

	document, err := service.BuildReport(products, sales, analytics)
	require.NoError(t, err)

	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestService_BuildReport_FalhaDoGraficoNaoAbortaODocumento(t *testing.T) {
	products, sales, analytics := reportFixture()

	charts := &chartRendererStub{
		render: func([]domain.MonthRanking) ([]byte, error) {
			return nil, errors.New("renderização indisponível")
		},
	}

	service := newTestReporter(charts)

	document, err := service.BuildReport(products, sales, analytics)
	require.NoError(t, err)

	assert.Equal(t, 1, charts.calls)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestService_BuildReport_SemVendasNaoChamaORenderizador(t *testing.T) {
	products, _, _ := reportFixture()
	analytics := analyzing.Aggregate(nil, products)

	charts := &chartRendererStub{
		render: func([]domain.MonthRanking) ([]byte, error) {
			return []byte("png"), nil
		},
	}

	service := newTestReporter(charts)

	document, err := service.BuildReport(products, nil, analytics)
	require.NoError(t, err)

	assert.Equal(t, 0, charts.calls)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestBarChartRenderer_RenderizaPNG(t *testing.T) {
	renderer := NewBarChartRenderer()

	png, err := renderer.RenderMonthlyRevenue([]domain.MonthRanking{
		{Month: "2024-01", Revenue: 650.0},
		{Month: "2024-02", Revenue: 680.0},
	})
	require.NoError(t, err)

	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestBarChartRenderer_SemMesesRetornaErro(t *testing.T) {
	renderer := NewBarChartRenderer()

	png, err := renderer.RenderMonthlyRevenue(nil)
	require.Error(t, err)
	assert.Nil(t, png)
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "relatorio_completo.pdf", ReportFilename)
}
