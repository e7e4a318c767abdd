package analyzing

import (
	"fmt"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
)

// FilterByPeriod devolve as vendas contidas no período, com intervalo
// fechado nas duas pontas e comparação na granularidade de dia.
func FilterByPeriod(sales []domain.Sale, filters *domain.PeriodFilters) []domain.Sale {
	if filters.IsUnbounded() {
		return sales
	}

	filtered := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if filters.Contains(sale.Date) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

// Aggregate calcula o agregado analítico de um par (vendas, produtos).
//
// A função é pura e determinística: com as mesmas entradas produz sempre
// a mesma saída. Vendas que referenciam produtos inexistentes são
// atribuídas à marca sentinela e continuam contando nos totais. Com a
// lista de vendas vazia o resultado tem totais zerados e nenhum
// destaque, nunca um erro.
func Aggregate(sales []domain.Sale, products []domain.Product) *domain.Analytics {
	analytics := &domain.Analytics{
		UnitsByProduct: make(map[int]int),
		RevenueByBrand: make(map[string]float64),
		RevenueByMonth: make(map[string]float64),
	}

	index := domain.NewProductIndex(products)

	// Ordem de primeira aparição de cada chave na lista de entrada.
	// Iterar mapas do Go não é determinístico; o desempate dos
	// destaques usa esta ordem estável.
	var (
		productOrder []int
		brandOrder   []string
		monthOrder   []string
	)

	for _, sale := range sales {
		if _, seen := analytics.UnitsByProduct[sale.ProductID]; !seen {
			productOrder = append(productOrder, sale.ProductID)
		}
		analytics.UnitsByProduct[sale.ProductID] += sale.Quantity

		brand := domain.UnknownBrand
		if product, ok := index[sale.ProductID]; ok && product.Brand != "" {
			brand = product.Brand
		}
		if _, seen := analytics.RevenueByBrand[brand]; !seen {
			brandOrder = append(brandOrder, brand)
		}
		analytics.RevenueByBrand[brand] += sale.TotalPrice

		month := sale.Date.MonthKey()
		if _, seen := analytics.RevenueByMonth[month]; !seen {
			monthOrder = append(monthOrder, month)
		}
		analytics.RevenueByMonth[month] += sale.TotalPrice

		analytics.TotalUnits += sale.Quantity
		analytics.TotalRevenue += sale.TotalPrice
		analytics.SalesCount++
	}

	if len(productOrder) > 0 {
		bestID, worstID := extremes(productOrder, func(id int) float64 {
			return float64(analytics.UnitsByProduct[id])
		})

		analytics.BestProduct = productRanking(analytics, index, bestID)
		analytics.WorstProduct = productRanking(analytics, index, worstID)
	}

	if len(brandOrder) > 0 {
		best, worst := extremes(brandOrder, func(brand string) float64 {
			return analytics.RevenueByBrand[brand]
		})

		analytics.BestBrand = &domain.BrandRanking{Brand: best, Revenue: analytics.RevenueByBrand[best]}
		analytics.WorstBrand = &domain.BrandRanking{Brand: worst, Revenue: analytics.RevenueByBrand[worst]}
	}

	if len(monthOrder) > 0 {
		best, worst := extremes(monthOrder, func(month string) float64 {
			return analytics.RevenueByMonth[month]
		})

		analytics.BestMonth = &domain.MonthRanking{Month: best, Revenue: analytics.RevenueByMonth[best]}
		analytics.WorstMonth = &domain.MonthRanking{Month: worst, Revenue: analytics.RevenueByMonth[worst]}
	}

	return analytics
}

// extremes devolve as chaves de maior e menor valor. Os empates são
// resolvidos pela primeira aparição na lista de entrada: a troca só
// acontece com valor estritamente melhor.
func extremes[K comparable](order []K, valueOf func(K) float64) (best, worst K) {
	best, worst = order[0], order[0]

	for _, key := range order[1:] {
		if valueOf(key) > valueOf(best) {
			best = key
		}
		if valueOf(key) < valueOf(worst) {
			worst = key
		}
	}

	return best, worst
}

func productRanking(analytics *domain.Analytics, index domain.ProductIndex, productID int) *domain.ProductRanking {
	return &domain.ProductRanking{
		ProductID: productID,
		Name:      ProductLabel(index, productID),
		Units:     analytics.UnitsByProduct[productID],
	}
}

// ProductLabel resolve o nome de um produto, com rótulo de contingência
// quando o catálogo não o contém mais.
func ProductLabel(index domain.ProductIndex, productID int) string {
	if product, ok := index[productID]; ok && product.Name != "" {
		return product.Name
	}

	return fmt.Sprintf("ID: %d", productID)
}
