// Package pdf genera el reporte de ventas del día en PDF (A4) para imprimir o enviar por correo.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: nombre del local        │  Reporte de ventas + fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: total / pedidos / ticket promedio / vs día ant.   │
//	│  ORIGEN: mostrador, uber_eats, rappi, didi_food              │
//	│  CATEGORÍA: bebida_caliente, alimento...                     │
//	│  TOP PRODUCTOS: # | Producto | Cant. | Total                 │
//	│  POR HORA: Hora | Pedidos | Total                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

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

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 111, Green: 78, Blue: 55}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 34, Green: 139, Blue: 34}
	colorRed     = &props.Color{Red: 178, Green: 34, Blue: 34}
)

var _ report.DailyPDFRenderer = (*DailyReportPDF)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// DailyReportPDF implementa report.DailyPDFRenderer usando Maroto v2.
type DailyReportPDF struct {
	businessName string
	printer      *message.Printer
}

// NewDailyReportPDF construye el generador; businessName va en el encabezado.
func NewDailyReportPDF(businessName string) *DailyReportPDF {
	return &DailyReportPDF{
		businessName: businessName,
		printer:      message.NewPrinter(language.MustParse("es-MX")),
	}
}

// RenderDailyReport genera el PDF y devuelve sus bytes.
func (g *DailyReportPDF) RenderDailyReport(_ context.Context, r *dto.DailySalesReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas "+r.Date, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r.Date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.metricsRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.breakdownRows("VENTAS POR ORIGEN", r.ByType)...)
	m.AddRows(g.breakdownRows("VENTAS POR CATEGORÍA", r.ByCategory)...)
	m.AddRows(g.topProductRows(r.TopProducts)...)
	m.AddRows(g.hourlyRows(r.Hourly)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Solo cuentan pedidos en estado listo o entregado.", props.Text{Size: 7, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *DailyReportPDF) headerRow(date string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENTAS DIARIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(date, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func (g *DailyReportPDF) metricsRow(r *dto.DailySalesReport) core.Row {
	metric := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center, Color: color}),
		)
	}
	cmpColor := colorGreen
	if r.Comparison.Difference.IsNegative() {
		cmpColor = colorRed
	}
	return row.New(16).Add(
		metric("Total vendido", g.money(r.Metrics.TotalSales), colorPrimary),
		metric("Pedidos", fmt.Sprintf("%d", r.Metrics.OrderCount), nil),
		metric("Ticket promedio", g.money(r.Metrics.AverageTicket), nil),
		metric("vs "+r.Comparison.PreviousDate, r.Comparison.Percentage.StringFixed(2)+"%", cmpColor),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 || (len(labels) == 4 && i == 1) {
			a = align.Left
		}
		cols[i] = col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(cols...)
}

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

// breakdownRows tabla por grupo, orden alfabético para que el PDF sea estable.
func (g *DailyReportPDF) breakdownRows(title string, groups map[string]dto.Breakdown) []core.Row {
	rows := []core.Row{sectionTitle(title)}
	if len(groups) == 0 {
		return append(rows, emptyRow())
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows = append(rows, tableHeader([]string{"Grupo", "Pedidos", "Total"}, []int{6, 3, 3}))
	for _, k := range keys {
		b := groups[k]
		rows = append(rows, row.New(6).Add(
			cell(k, 6, align.Left),
			cell(fmt.Sprintf("%d", b.Count), 3, align.Right),
			cell(g.money(b.Total), 3, align.Right),
		))
	}
	return rows
}

func (g *DailyReportPDF) topProductRows(top []dto.TopProduct) []core.Row {
	rows := []core.Row{sectionTitle("PRODUCTOS MÁS VENDIDOS")}
	if len(top) == 0 {
		return append(rows, emptyRow())
	}
	rows = append(rows, tableHeader([]string{"#", "Producto", "Cant.", "Total"}, []int{1, 6, 2, 3}))
	for i, p := range top {
		rows = append(rows, row.New(6).Add(
			cell(fmt.Sprintf("%d", i+1), 1, align.Left),
			cell(p.Name, 6, align.Left),
			cell(fmt.Sprintf("%d", p.Quantity), 2, align.Right),
			cell(g.money(p.Total), 3, align.Right),
		))
	}
	return rows
}

func (g *DailyReportPDF) hourlyRows(hours []dto.HourlySales) []core.Row {
	rows := []core.Row{sectionTitle("VENTAS POR HORA")}
	if len(hours) == 0 {
		return append(rows, emptyRow())
	}
	rows = append(rows, tableHeader([]string{"Hora", "Pedidos", "Total"}, []int{6, 3, 3}))
	for _, h := range hours {
		rows = append(rows, row.New(6).Add(
			cell(fmt.Sprintf("%02d:00", h.Hour), 6, align.Left),
			cell(fmt.Sprintf("%d", h.Count), 3, align.Right),
			cell(g.money(h.Total), 3, align.Right),
		))
	}
	return rows
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin ventas", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles y dos decimales, p.ej. $1,234.50.
func (g *DailyReportPDF) money(d decimal.Decimal) string {
	return g.printer.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}
