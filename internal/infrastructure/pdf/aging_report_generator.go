// Package pdf genera el reporte de cartera por antigüedad en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de corte │ filtros aplicados        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Facturado | Recaudado | Saldo | Vencido | % vencido   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Current | 0-30 | 31-60 | 61-90 | 90+               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Cliente | Vence | Monto | Saldo | Antigüedad    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorOverdue = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoAgingReportGenerator implementa ports.AgingReportPDFGenerator usando Maroto v2.
type MarotoAgingReportGenerator struct {
	printer *message.Printer
}

var _ ports.AgingReportPDFGenerator = (*MarotoAgingReportGenerator)(nil)

// NewMarotoAgingReportGenerator construye el generador. Los montos se formatean
// con separador de miles en inglés americano ($1,234.50).
func NewMarotoAgingReportGenerator() *MarotoAgingReportGenerator {
	return &MarotoAgingReportGenerator{printer: message.NewPrinter(language.AmericanEnglish)}
}

// GenerateAgingReport genera el PDF y devuelve sus bytes.
func (g *MarotoAgingReportGenerator) GenerateAgingReport(ctx context.Context, report *dto.AgingReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de cartera", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRows(report.KPIs)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.bucketRows(report.Buckets)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(report.Rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha de corte (izq) y filtros aplicados (der).
func (g *MarotoAgingReportGenerator) headerRow(report *dto.AgingReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE CARTERA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha de corte: "+report.GeneratedAt, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FILTROS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(describeFilter(report.Filter), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// kpiRows: etiquetas y valores de los cinco indicadores.
func (g *MarotoAgingReportGenerator) kpiRows(k dto.KPISummaryDTO) []core.Row {
	labels := []string{"Facturado", "Recaudado", "Saldo", "Vencido", "% vencido"}
	values := []string{
		g.money(k.TotalInvoiced),
		g.money(k.TotalReceived),
		g.money(k.TotalOutstanding),
		g.money(k.OverdueOutstanding),
		k.PercentOverdue.StringFixed(2) + "%",
	}
	// 5 columnas que suman las 12 de la grilla.
	sizes := []int{2, 2, 3, 3, 2}

	head := row.New(6)
	body := row.New(8)
	for i := range labels {
		head.Add(col.New(sizes[i]).Add(text.New(labels[i], props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center,
		})))
		valueColor := colorGray
		if i >= 3 && k.OverdueOutstanding.IsPositive() {
			valueColor = colorOverdue
		}
		body.Add(col.New(sizes[i]).Add(text.New(values[i], props.Text{
			Style: fontstyle.Bold, Size: 10, Color: valueColor, Top: 1, Align: align.Center,
		})))
	}
	return []core.Row{head, body}
}

// bucketRows: resumen de saldo y número de facturas por bucket.
func (g *MarotoAgingReportGenerator) bucketRows(buckets []dto.AgingBucketTotalDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("SALDO POR ANTIGÜEDAD", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, b := range buckets {
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(b.Bucket, props.Text{Size: 8, Top: 0.5, Left: 2})),
			col.New(3).Add(text.New(fmt.Sprintf("%d facturas", b.InvoiceCount), props.Text{
				Size: 8, Top: 0.5, Color: colorGray,
			})),
			col.New(6).Add(text.New(g.money(b.Outstanding), props.Text{
				Size: 8, Top: 0.5, Align: align.Right, Right: 1,
			})),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de facturas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Cliente", 3, align.Left),
		h("Vence", 2, align.Center),
		h("Monto", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Antigüedad", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por factura, con franjas alternas.
func (g *MarotoAgingReportGenerator) tableRows(items []dto.InvoiceRowDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(text.New("Sin facturas para los filtros indicados", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		})))}
	}

	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		bucketColor := colorGray
		if it.Outstanding.IsPositive() && it.AgingBucket != "Current" {
			bucketColor = colorOverdue
		}
		r := row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.InvoiceID), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(it.CustomerName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.DueDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.money(it.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money(it.Outstanding), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(it.AgingBucket, props.Text{Size: 8, Align: align.Center, Top: 1, Color: bucketColor})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea un monto con dos decimales y separador de miles: 1234.5 → "$1,234.50".
func (g *MarotoAgingReportGenerator) money(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, g.printer.Sprintf("%d", whole.IntPart()), cents)
}

// describeFilter resume los filtros recibidos; sin filtros → "Todas las facturas".
func describeFilter(f dto.InvoiceFilterRequest) string {
	var parts []string
	if f.CustomerID != "" {
		parts = append(parts, "Cliente "+f.CustomerID)
	}
	if f.StartDate != "" {
		parts = append(parts, "desde "+f.StartDate)
	}
	if f.EndDate != "" {
		parts = append(parts, "hasta "+f.EndDate)
	}
	if len(parts) == 0 {
		return "Todas las facturas"
	}
	return strings.Join(parts, ", ")
}
