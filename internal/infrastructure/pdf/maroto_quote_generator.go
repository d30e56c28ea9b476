// Package pdf implementa a geração da proposta de orçamento em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marca + WhatsApp + Endereço  │  Orçamento #N       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÍTULO: Proposta de Orçamento + chips (data/status/itens)  │
//	│  CLIENTE: Nome / Telefone / Endereço  │  CONDIÇÕES: 50/50   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto/Serviço | Qtd | Valor unit. | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL em destaque                                          │
//	│  CONDIÇÕES COMERCIAIS (bullets fixos)                       │
//	│  FOOTER: data de geração                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/billing"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	domquote "github.com/kvmarcenaria/marcenaria-api/internal/domain/quote"
	"github.com/kvmarcenaria/marcenaria-api/pkg/brl"
	"github.com/kvmarcenaria/marcenaria-api/pkg/config"
)

var (
	colorWood  = &props.Color{Red: 107, Green: 68, Blue: 35}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight = &props.Color{Red: 140, Green: 140, Blue: 140}
)

// Condições comerciais fixas impressas em toda proposta.
var commercialTerms = []string{
	"Prazo de entrega: até 40 dias úteis após a confirmação do pedido.",
	"Validade da proposta: 7 dias corridos a partir da data de emissão.",
	"Pagamento: 50% na aprovação e 50% na entrega/montagem.",
	"Formas de pagamento: PIX, cartão de crédito ou débito.",
	"Alterações de projeto após a aprovação podem gerar custo adicional.",
}

var _ billing.PDFGenerator = (*MarotoQuoteGenerator)(nil)

// MarotoQuoteGenerator implementa billing.PDFGenerator usando Maroto v2.
// Os dados fixos da oficina (marca, WhatsApp, endereço) vêm da configuração.
type MarotoQuoteGenerator struct {
	cfg config.PDFConfig
}

// NewMarotoQuoteGenerator constrói o gerador.
func NewMarotoQuoteGenerator(cfg config.PDFConfig) *MarotoQuoteGenerator {
	return &MarotoQuoteGenerator{cfg: cfg}
}

// Generate monta o documento e devolve seus bytes.
func (g *MarotoQuoteGenerator) Generate(data billing.PDFData) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Orçamento #%d", data.Quote.OrderNumber), true).
		WithAuthor(g.cfg.BrandName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data.Quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorWood, Thickness: 0.5}))
	m.AddRows(g.titleRow(data))
	m.AddRows(g.clientRow(data.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorWood, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(data.Items) == 0 {
		m.AddRows(emptyItemsRow())
	}
	for _, r := range tableItemRows(data.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorWood, Thickness: 0.3}))
	m.AddRows(totalRow(data.Items))

	m.AddRows(line.NewRow(3))
	for _, r := range termsRows() {
		m.AddRows(r)
	}
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marca + contato (esq) e número do orçamento (dir).
func (g *MarotoQuoteGenerator) headerRow(quote *entity.Quote) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(g.cfg.BrandName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorWood, Top: 1,
			}),
			text.New("WhatsApp: "+g.cfg.WhatsApp, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(g.cfg.Address, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Orçamento #%d", quote.OrderNumber), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4, Color: colorWood,
			}),
		),
	)
}

// titleRow: título + chips de data, status e contagem de itens.
func (g *MarotoQuoteGenerator) titleRow(data billing.PDFData) core.Row {
	date := "sem data"
	if data.Quote.QuoteDate != nil {
		date = data.Quote.QuoteDate.Format("02/01/2006")
	}
	chips := fmt.Sprintf("%s   •   %s   •   %d item(ns)", date, data.Quote.Status, len(data.Items))

	return row.New(14).Add(
		col.New(12).Add(
			text.New("Proposta de Orçamento", props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 1,
			}),
			text.New(chips, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// clientRow: dados do cliente (esq) e condições de pagamento (dir).
func (g *MarotoQuoteGenerator) clientRow(client *entity.Client) core.Row {
	name, phone, address := "—", "—", "—"
	if client != nil {
		name = client.Name
		if client.Phone != "" {
			phone = client.Phone
		}
		if client.Address != "" {
			address = client.Address
		}
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorWood, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Tel: %s   |   %s", phone, address), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PAGAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorWood, Top: 1, Align: align.Right,
			}),
			text.New("50% na aprovação", props.Text{Size: 8, Top: 7, Align: align.Right}),
			text.New("50% na entrega/montagem", props.Text{Size: 8, Top: 12, Align: align.Right}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWood, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto/Serviço", 6, align.Left),
		h("Qtd", 1, align.Center),
		h("Valor unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// emptyItemsRow: placeholder quando o orçamento ainda não tem itens.
func emptyItemsRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New("Nenhum item adicionado.", props.Text{
			Size: 9, Align: align.Center, Top: 3, Color: colorLight,
		})),
	)
}

// tableItemRows: uma linha por item. Categoria aparece abaixo do nome.
func tableItemRows(items []*entity.QuoteItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.ProductName
		if it.ProductCategory != "" {
			name = fmt.Sprintf("%s  (%s)", it.ProductName, it.ProductCategory)
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(it.Quantity.String(), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(brl.FormatMoney(it.UnitPrice), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New(brl.FormatMoney(domquote.LineSubtotal(*it)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalRow: total em destaque, alinhado à direita.
func totalRow(items []*entity.QuoteItem) core.Row {
	flat := make([]entity.QuoteItem, 0, len(items))
	for _, it := range items {
		flat = append(flat, *it)
	}
	total := domquote.Total(flat)

	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorWood, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New(brl.FormatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorWood, Top: 3, Right: 1,
		})),
	)
}

// termsRows: condições comerciais fixas.
func termsRows() []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONDIÇÕES COMERCIAIS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorWood, Top: 1,
			}),
		)),
	}
	for _, term := range commercialTerms {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("•  "+term, props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray}),
		)))
	}
	return rows
}

// footerRow: data de geração do documento.
func footerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(
			"Documento gerado em "+time.Now().Format("02/01/2006 15:04"),
			props.Text{Size: 7, Align: align.Center, Top: 5, Color: colorLight},
		)),
	)
}
