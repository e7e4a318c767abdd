package analyzing

import (
	"testing"
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOn(id, productID, quantity int, total float64, year int, month time.Month, day int) domain.Sale {
	return domain.Sale{
		ID:         id,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: total,
		Date:       domain.NewDate(year, month, day),
	}
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Tênis Runner", Brand: "Alfa", Price: 199.90, CategoryID: 1},
		{ID: 2, Name: "Camiseta Básica", Brand: "Beta", Price: 49.90, CategoryID: 2},
		{ID: 3, Name: "Boné Clássico", Brand: "Alfa", Price: 79.90, CategoryID: 3},
	}
}

func TestAggregate_TotaisEDistribuicoes(t *testing.T) {
	products := catalogFixture()
	sales := []domain.Sale{
		saleOn(1, 1, 2, 400.0, 2024, time.January, 10),
		saleOn(2, 2, 5, 250.0, 2024, time.January, 20),
		saleOn(3, 3, 1, 80.0, 2024, time.February, 5),
		saleOn(4, 1, 3, 600.0, 2024, time.February, 15),
	}

	analytics := Aggregate(sales, products)

	assert.Equal(t, 4, analytics.SalesCount)
	assert.Equal(t, 11, analytics.TotalUnits)
	assert.InDelta(t, 1330.0, analytics.TotalRevenue, 0.001)

	assert.Equal(t, map[int]int{1: 5, 2: 5, 3: 1}, analytics.UnitsByProduct)

	// Produtos 1 e 3 são da mesma marca
	assert.InDelta(t, 1080.0, analytics.RevenueByBrand["Alfa"], 0.001)
	assert.InDelta(t, 250.0, analytics.RevenueByBrand["Beta"], 0.001)

	assert.InDelta(t, 650.0, analytics.RevenueByMonth["2024-01"], 0.001)
	assert.InDelta(t, 680.0, analytics.RevenueByMonth["2024-02"], 0.001)
}

func TestAggregate_SomaDasParticoesIgualAoTotal(t *testing.T) {
	products := catalogFixture()
	sales := []domain.Sale{
		saleOn(1, 1, 2, 123.45, 2024, time.January, 1),
		saleOn(2, 2, 1, 67.89, 2024, time.February, 2),
		saleOn(3, 99, 4, 10.10, 2024, time.March, 3), // produto fora do catálogo
		saleOn(4, 3, 2, 200.56, 2024, time.March, 30),
	}

	analytics := Aggregate(sales, products)

	var byBrand, byMonth float64
	for _, revenue := range analytics.RevenueByBrand {
		byBrand += revenue
	}
	for _, revenue := range analytics.RevenueByMonth {
		byMonth += revenue
	}

	var units int
	for _, quantity := range analytics.UnitsByProduct {
		units += quantity
	}

	// Cada venda cai em exatamente uma marca e um mês: as partições
	// somam o total, a menos de arredondamento de ponto flutuante.
	assert.InDelta(t, analytics.TotalRevenue, byBrand, 0.001)
	assert.InDelta(t, analytics.TotalRevenue, byMonth, 0.001)
	assert.Equal(t, analytics.TotalUnits, units)
}

func TestAggregate_Deterministico(t *testing.T) {
	products := catalogFixture()
	sales := []domain.Sale{
		saleOn(1, 1, 1, 100.0, 2024, time.January, 1),
		saleOn(2, 2, 1, 100.0, 2024, time.January, 2),
		saleOn(3, 3, 1, 100.0, 2024, time.January, 3),
	}

	first := Aggregate(sales, products)
	second := Aggregate(sales, products)

	assert.Equal(t, first, second)
}

func TestAggregate_ListaVazia(t *testing.T) {
	analytics := Aggregate(nil, catalogFixture())

	assert.Equal(t, 0, analytics.SalesCount)
	assert.Equal(t, 0, analytics.TotalUnits)
	assert.Zero(t, analytics.TotalRevenue)
	assert.Empty(t, analytics.UnitsByProduct)
	assert.Empty(t, analytics.RevenueByBrand)
	assert.Empty(t, analytics.RevenueByMonth)

	// Sem vendas não há destaques
	assert.Nil(t, analytics.BestProduct)
	assert.Nil(t, analytics.WorstProduct)
	assert.Nil(t, analytics.BestBrand)
	assert.Nil(t, analytics.WorstBrand)
	assert.Nil(t, analytics.BestMonth)
	assert.Nil(t, analytics.WorstMonth)
	assert.False(t, analytics.HasSales())
}

func TestAggregate_ProdutoForaDoCatalogoContaComoUnknown(t *testing.T) {
	sales := []domain.Sale{
		saleOn(1, 42, 3, 300.0, 2024, time.May, 10),
	}

	analytics := Aggregate(sales, catalogFixture())

	assert.InDelta(t, 300.0, analytics.RevenueByBrand[domain.UnknownBrand], 0.001)
	assert.InDelta(t, 300.0, analytics.TotalRevenue, 0.001)
	assert.Equal(t, 3, analytics.UnitsByProduct[42])

	require.NotNil(t, analytics.BestProduct)
	assert.Equal(t, "ID: 42", analytics.BestProduct.Name)
}

func TestAggregate_DestaquesMelhorEPior(t *testing.T) {
	products := catalogFixture()
	sales := []domain.Sale{
		saleOn(1, 1, 10, 1000.0, 2024, time.January, 5),
		saleOn(2, 2, 3, 150.0, 2024, time.February, 5),
		saleOn(3, 3, 1, 80.0, 2024, time.March, 5),
	}

	analytics := Aggregate(sales, products)

	require.NotNil(t, analytics.BestProduct)
	assert.Equal(t, 1, analytics.BestProduct.ProductID)
	assert.Equal(t, "Tênis Runner", analytics.BestProduct.Name)
	assert.Equal(t, 10, analytics.BestProduct.Units)

	require.NotNil(t, analytics.WorstProduct)
	assert.Equal(t, 3, analytics.WorstProduct.ProductID)
	assert.Equal(t, 1, analytics.WorstProduct.Units)

	require.NotNil(t, analytics.BestBrand)
	assert.Equal(t, "Alfa", analytics.BestBrand.Brand)
	assert.InDelta(t, 1080.0, analytics.BestBrand.Revenue, 0.001)

	require.NotNil(t, analytics.WorstBrand)
	assert.Equal(t, "Beta", analytics.WorstBrand.Brand)

	require.NotNil(t, analytics.BestMonth)
	assert.Equal(t, "2024-01", analytics.BestMonth.Month)

	require.NotNil(t, analytics.WorstMonth)
	assert.Equal(t, "2024-03", analytics.WorstMonth.Month)
}

func TestAggregate_EmpateResolvidoPelaPrimeiraAparicao(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Produto A", Brand: "Alfa"},
		{ID: 2, Name: "Produto B", Brand: "Beta"},
	}

	// Mesmas unidades e mesmo faturamento para os dois produtos: o
	// empate é resolvido pela ordem de aparição na lista de vendas.
	sales := []domain.Sale{
		saleOn(1, 2, 5, 500.0, 2024, time.January, 1),
		saleOn(2, 1, 5, 500.0, 2024, time.January, 2),
	}

	analytics := Aggregate(sales, products)

	require.NotNil(t, analytics.BestProduct)
	assert.Equal(t, 2, analytics.BestProduct.ProductID)
	require.NotNil(t, analytics.WorstProduct)
	assert.Equal(t, 2, analytics.WorstProduct.ProductID)

	require.NotNil(t, analytics.BestBrand)
	assert.Equal(t, "Beta", analytics.BestBrand.Brand)
	require.NotNil(t, analytics.WorstBrand)
	assert.Equal(t, "Beta", analytics.WorstBrand.Brand)
}

func TestAggregate_UmaUnicaVendaEMelhorEPiorAoMesmoTempo(t *testing.T) {
	sales := []domain.Sale{
		saleOn(1, 1, 2, 100.0, 2024, time.June, 1),
	}

	analytics := Aggregate(sales, catalogFixture())

	require.NotNil(t, analytics.BestProduct)
	require.NotNil(t, analytics.WorstProduct)
	assert.Equal(t, analytics.BestProduct, analytics.WorstProduct)
	assert.Equal(t, analytics.BestBrand, analytics.WorstBrand)
	assert.Equal(t, analytics.BestMonth, analytics.WorstMonth)
}

func TestFilterByPeriod_IntervaloFechadoNasDuasPontas(t *testing.T) {
	sales := []domain.Sale{
		saleOn(1, 1, 1, 10.0, 2024, time.January, 9),
		saleOn(2, 1, 1, 10.0, 2024, time.January, 10),
		saleOn(3, 1, 1, 10.0, 2024, time.January, 15),
		saleOn(4, 1, 1, 10.0, 2024, time.January, 20),
		saleOn(5, 1, 1, 10.0, 2024, time.January, 21),
	}

	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	filters := &domain.PeriodFilters{StartDate: &start, EndDate: &end}

	filtered := FilterByPeriod(sales, filters)

	require.Len(t, filtered, 3)
	assert.Equal(t, 2, filtered[0].ID)
	assert.Equal(t, 3, filtered[1].ID)
	assert.Equal(t, 4, filtered[2].ID)
}

func TestFilterByPeriod_ComponenteDeHorarioNaoExcluiVendaNaBorda(t *testing.T) {
	// Venda datada com horário no último dia do período ainda pertence
	// ao período: a comparação é na granularidade de dia.
	sale := domain.Sale{
		ID:         1,
		ProductID:  1,
		Quantity:   1,
		TotalPrice: 10.0,
		Date:       domain.DateOf(time.Date(2024, time.January, 20, 18, 30, 0, 0, time.UTC)),
	}

	end := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	filters := &domain.PeriodFilters{EndDate: &end}

	filtered := FilterByPeriod([]domain.Sale{sale}, filters)
	assert.Len(t, filtered, 1)
}

func TestFilterByPeriod_SemFiltroDevolveTudo(t *testing.T) {
	sales := []domain.Sale{
		saleOn(1, 1, 1, 10.0, 2024, time.January, 1),
		saleOn(2, 1, 1, 10.0, 2025, time.December, 31),
	}

	assert.Equal(t, sales, FilterByPeriod(sales, nil))
	assert.Equal(t, sales, FilterByPeriod(sales, &domain.PeriodFilters{}))
}

func TestFilterByPeriod_ApenasUmaPonta(t *testing.T) {
	sales := []domain.Sale{
		saleOn(1, 1, 1, 10.0, 2024, time.January, 5),
		saleOn(2, 1, 1, 10.0, 2024, time.March, 5),
	}

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	filtered := FilterByPeriod(sales, &domain.PeriodFilters{StartDate: &start})

	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].ID)
}

func TestProductLabel(t *testing.T) {
	index := domain.NewProductIndex(catalogFixture())

	assert.Equal(t, "Tênis Runner", ProductLabel(index, 1))
	assert.Equal(t, "ID: 77", ProductLabel(index, 77))
}
