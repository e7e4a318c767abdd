package domain

import "sort"

// UnknownBrand é o rótulo usado quando uma venda referencia um produto
// que não existe mais no catálogo. A venda continua contando nos totais.
const UnknownBrand = "Unknown"

// ProductRanking destaca um produto pelo total de unidades vendidas.
type ProductRanking struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
}

// BrandRanking destaca uma marca pelo faturamento acumulado.
type BrandRanking struct {
	Brand   string  `json:"brand"`
	Revenue float64 `json:"revenue"`
}

// MonthRanking destaca um mês (YYYY-MM) pelo faturamento acumulado.
type MonthRanking struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Analytics é o agregado derivado de um par (vendas, produtos), limitado
// a um período opcional. Não é persistido: é recalculado por inteiro a
// cada mudança das listas ou do filtro. Os campos Best/Worst ficam nil
// quando não há dados no período.
type Analytics struct {
	TotalRevenue   float64            `json:"total_revenue"`
	TotalUnits     int                `json:"total_units"`
	SalesCount     int                `json:"sales_count"`
	UnitsByProduct map[int]int        `json:"units_by_product"`
	RevenueByBrand map[string]float64 `json:"revenue_by_brand"`
	RevenueByMonth map[string]float64 `json:"revenue_by_month"`

	BestProduct  *ProductRanking `json:"best_product,omitempty"`
	WorstProduct *ProductRanking `json:"worst_product,omitempty"`
	BestBrand    *BrandRanking   `json:"best_brand,omitempty"`
	WorstBrand   *BrandRanking   `json:"worst_brand,omitempty"`
	BestMonth    *MonthRanking   `json:"best_month,omitempty"`
	WorstMonth   *MonthRanking   `json:"worst_month,omitempty"`

	Filters *PeriodFilters `json:"filters,omitempty"`
}

// HasSales informa se o período analisado contém alguma venda.
func (a *Analytics) HasSales() bool {
	return a != nil && a.SalesCount > 0
}

// MonthsInOrder devolve o faturamento mensal em ordem cronológica.
// As chaves YYYY-MM ordenam lexicograficamente na ordem do calendário.
func (a *Analytics) MonthsInOrder() []MonthRanking {
	if a == nil || len(a.RevenueByMonth) == 0 {
		return nil
	}

	keys := make([]string, 0, len(a.RevenueByMonth))
	for month := range a.RevenueByMonth {
		keys = append(keys, month)
	}
	sort.Strings(keys)

	months := make([]MonthRanking, 0, len(keys))
	for _, month := range keys {
		months = append(months, MonthRanking{Month: month, Revenue: a.RevenueByMonth[month]})
	}

	return months
}
