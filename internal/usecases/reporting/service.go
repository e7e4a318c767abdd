package reporting

import (
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/sirupsen/logrus"
)

// ReportFilename é o nome do artefato exportado.
const ReportFilename = "relatorio_completo.pdf"

// Reporter monta o relatório completo em PDF a partir do agregado e das
// listas filtradas que o geraram.
type Reporter interface {
	BuildReport(products []domain.Product, sales []domain.Sale, analytics *domain.Analytics) ([]byte, error)
}

type Service struct {
	cfg    *config.Config
	charts ChartRenderer
	now    func() time.Time
}

func NewService(cfg *config.Config, charts ChartRenderer) *Service {
	return &Service{
		cfg:    cfg,
		charts: charts,
		now:    time.Now,
	}
}

// BuildReport executa o pipeline em dois estágios: primeiro o gráfico de
// faturamento mensal é renderizado como imagem; depois o documento é
// diagramado por completo. A falha do gráfico degrada para um texto de
// contingência e nunca aborta o restante do relatório.
func (s *Service) BuildReport(products []domain.Product, sales []domain.Sale, analytics *domain.Analytics) ([]byte, error) {
	var chartPNG []byte

	if analytics.HasSales() {
		rendered, err := s.charts.RenderMonthlyRevenue(analytics.MonthsInOrder())
		if err != nil {
			logrus.WithError(err).Warn("Gráfico do relatório indisponível, usando texto de contingência")
		} else {
			chartPNG = rendered
		}
	}

	builder := newPDFBuilder()
	builder.header(s.cfg.Report.Title, s.now())
	builder.kpiSummary(analytics)
	builder.chartSection(chartPNG)
	builder.salesTable(sales, domain.NewProductIndex(products), analyzing.ProductLabel)
	builder.productTable(products)

	return builder.output()
}
