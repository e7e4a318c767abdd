package reporting

import (
	"bytes"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// ChartRenderer é o primeiro estágio do pipeline do relatório: renderiza
// o gráfico de faturamento mensal como imagem PNG. O estágio é isolado
// para que a falha de renderização possa ser testada e degradada sem
// abortar o restante do documento.
type ChartRenderer interface {
	RenderMonthlyRevenue(months []domain.MonthRanking) ([]byte, error)
}

type BarChartRenderer struct{}

func NewBarChartRenderer() ChartRenderer {
	return BarChartRenderer{}
}

func (BarChartRenderer) RenderMonthlyRevenue(months []domain.MonthRanking) ([]byte, error) {
	if len(months) == 0 {
		return nil, errors.New("sem faturamento mensal para desenhar o gráfico")
	}

	bars := make([]chart.Value, 0, len(months))
	for _, month := range months {
		bars = append(bars, chart.Value{
			Label: month.Month,
			Value: month.Revenue,
		})
	}

	graph := chart.BarChart{
		Width:    600,
		Height:   250,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 10, Right: 10, Bottom: 10},
		},
		Bars: bars,
	}

	var buffer bytes.Buffer
	if err := graph.Render(chart.PNG, &buffer); err != nil {
		return nil, errors.Wrap(err, "erro ao renderizar o gráfico de faturamento mensal")
	}

	return buffer.Bytes(), nil
}
