package reporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
	"github.com/estoquelab/painel-vendas-api/pkg/utils"
	"github.com/go-pdf/fpdf"
)

// Paleta do relatório, a mesma do painel.
var (
	primaryColor = [3]int{30, 41, 59}
	accentColor  = [3]int{79, 70, 229}
)

type pdfBuilder struct {
	pdf       *fpdf.Fpdf
	tr        func(string) string
	pageWidth float64
}

func newPDFBuilder() *pdfBuilder {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 25)
	pdf.AliasNbPages("")

	// O rodapé "Página X de Y" usa o alias de total de páginas: o valor
	// só é conhecido depois que todo o conteúdo foi posicionado, e o
	// fpdf substitui o alias no fechamento do documento.
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10, fmt.Sprintf("Página %d de {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pageWidth, _ := pdf.GetPageSize()

	return &pdfBuilder{
		pdf:       pdf,
		tr:        pdf.UnicodeTranslatorFromDescriptor(""),
		pageWidth: pageWidth,
	}
}

func (b *pdfBuilder) header(title string, issuedAt time.Time) {
	b.pdf.AddPage()

	b.pdf.SetFillColor(primaryColor[0], primaryColor[1], primaryColor[2])
	b.pdf.Rect(0, 0, b.pageWidth, 40, "F")

	b.pdf.SetTextColor(255, 255, 255)
	b.pdf.SetFont("Helvetica", "B", 20)
	b.pdf.Text(14, 25, b.tr(title))

	b.pdf.SetFont("Helvetica", "", 10)
	issued := b.tr(fmt.Sprintf("Emissão: %s", issuedAt.Format("02/01/2006")))
	b.pdf.Text(b.pageWidth-14-b.pdf.GetStringWidth(issued), 25, issued)
}

func (b *pdfBuilder) kpiSummary(analytics *domain.Analytics) {
	b.pdf.SetTextColor(primaryColor[0], primaryColor[1], primaryColor[2])
	b.pdf.SetFont("Helvetica", "B", 13)
	b.pdf.Text(14, 52, "Resumo Executivo")

	leadingProduct := "-"
	if analytics.BestProduct != nil {
		leadingProduct = analytics.BestProduct.Name
	}

	leadingBrand := "-"
	if analytics.BestBrand != nil {
		leadingBrand = analytics.BestBrand.Brand
	}

	kpis := [][2]string{
		{"Total em Vendas:", utils.FormatCurrency(analytics.TotalRevenue)},
		{"Produto Destaque:", leadingProduct},
		{"Marca Líder:", leadingBrand},
	}

	b.pdf.SetFont("Helvetica", "", 9)
	for i, kpi := range kpis {
		y := 62 + float64(i)*6
		b.pdf.SetFont("Helvetica", "B", 9)
		b.pdf.Text(14, y, b.tr(kpi[0]))
		b.pdf.SetFont("Helvetica", "", 9)
		b.pdf.Text(50, y, b.tr(kpi[1]))
	}
}

// chartSection desenha a imagem do gráfico ou, na falta dela, um texto
// de contingência. O relatório nunca é abortado por falha do gráfico.
func (b *pdfBuilder) chartSection(chartPNG []byte) {
	b.pdf.SetFont("Helvetica", "B", 13)
	b.pdf.SetTextColor(primaryColor[0], primaryColor[1], primaryColor[2])
	b.pdf.Text(14, 88, b.tr("Evolução de Faturamento"))

	if len(chartPNG) == 0 {
		b.pdf.SetFont("Helvetica", "I", 10)
		b.pdf.SetTextColor(120, 120, 120)
		b.pdf.Text(14, 100, b.tr("Gráfico indisponível"))
		b.pdf.SetY(110)
		return
	}

	options := fpdf.ImageOptions{ImageType: "PNG"}
	b.pdf.RegisterImageOptionsReader("monthly_revenue_chart", options, bytes.NewReader(chartPNG))
	b.pdf.ImageOptions("monthly_revenue_chart", 14, 92, 180, 60, false, options, 0, "")
	b.pdf.SetY(160)
}

func (b *pdfBuilder) salesTable(sales []domain.Sale, index domain.ProductIndex, resolveName func(domain.ProductIndex, int) string) {
	b.sectionTitle("Detalhamento de Vendas")

	widths := []float64{110, 25, 47}
	b.tableHead([]string{"Produto", "Qtd", "Valor Total"}, widths, accentColor)

	b.pdf.SetFont("Helvetica", "", 9)
	b.pdf.SetTextColor(40, 40, 40)

	for i, sale := range sales {
		fill := i%2 == 1
		b.pdf.SetFillColor(245, 245, 245)
		b.pdf.CellFormat(widths[0], 7, b.tr(resolveName(index, sale.ProductID)), "", 0, "L", fill, 0, "")
		b.pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", sale.Quantity), "", 0, "C", fill, 0, "")
		b.pdf.CellFormat(widths[2], 7, b.tr(utils.FormatCurrency(sale.TotalPrice)), "", 1, "R", fill, 0, "")
	}

	b.pdf.Ln(6)
}

func (b *pdfBuilder) productTable(products []domain.Product) {
	b.sectionTitle("Inventário de Produtos")

	widths := []float64{85, 40, 35, 22}
	b.tableHead([]string{"Nome do Produto", "Marca", "Preço", "Cat."}, widths, primaryColor)

	b.pdf.SetFont("Helvetica", "", 9)
	b.pdf.SetTextColor(40, 40, 40)
	b.pdf.SetDrawColor(220, 220, 220)

	for _, product := range products {
		b.pdf.CellFormat(widths[0], 7, b.tr(product.Name), "1", 0, "L", false, 0, "")
		b.pdf.CellFormat(widths[1], 7, b.tr(product.Brand), "1", 0, "L", false, 0, "")
		b.pdf.CellFormat(widths[2], 7, b.tr(utils.FormatCurrency(product.Price)), "1", 0, "R", false, 0, "")
		b.pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d", product.CategoryID), "1", 1, "C", false, 0, "")
	}
}

func (b *pdfBuilder) sectionTitle(title string) {
	// Quebra antecipada para o título não ficar órfão no fim da página.
	if b.pdf.GetY() > 250 {
		b.pdf.AddPage()
		b.pdf.SetY(20)
	}

	b.pdf.SetFont("Helvetica", "B", 13)
	b.pdf.SetTextColor(primaryColor[0], primaryColor[1], primaryColor[2])
	b.pdf.CellFormat(0, 8, b.tr(title), "", 1, "L", false, 0, "")
	b.pdf.Ln(2)
}

func (b *pdfBuilder) tableHead(labels []string, widths []float64, color [3]int) {
	b.pdf.SetFillColor(color[0], color[1], color[2])
	b.pdf.SetTextColor(255, 255, 255)
	b.pdf.SetFont("Helvetica", "B", 10)

	for i, label := range labels {
		last := i == len(labels)-1
		ln := 0
		if last {
			ln = 1
		}
		b.pdf.CellFormat(widths[i], 8, b.tr(label), "", ln, "L", true, 0, "")
	}
}

func (b *pdfBuilder) output() ([]byte, error) {
	var buffer bytes.Buffer
	if err := b.pdf.Output(&buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
