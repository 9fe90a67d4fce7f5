package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
)

func sampleReport() *dto.DailySalesReport {
	return &dto.DailySalesReport{
		Date: "2026-03-07",
		SalesReport: dto.SalesReport{
			Metrics: dto.SalesMetrics{
				TotalSales:    decimal.RequireFromString("1234.50"),
				OrderCount:    12,
				AverageTicket: decimal.RequireFromString("102.88"),
			},
			ByType: map[string]dto.Breakdown{
				"mostrador": {Count: 10, Total: decimal.RequireFromString("1000.00")},
				"rappi":     {Count: 2, Total: decimal.RequireFromString("234.50")},
			},
			ByCategory: map[string]dto.Breakdown{
				"bebida_caliente": {Count: 20, Total: decimal.RequireFromString("900.00")},
			},
			TopProducts: []dto.TopProduct{{Name: "Latte", Quantity: 20, Total: decimal.RequireFromString("900.00")}},
		},
		Hourly: []dto.HourlySales{{Hour: 9, Count: 5, Total: decimal.RequireFromString("500.00")}},
		Comparison: dto.DayComparison{
			PreviousDate: "2026-03-06", PreviousTotal: decimal.RequireFromString("1000"),
			Difference: decimal.RequireFromString("234.50"), Percentage: decimal.RequireFromString("23.45"),
		},
	}
}

func TestRenderDailyReport_GeneraPDF(t *testing.T) {
	g := NewDailyReportPDF("Cafetería Central")

	out, err := g.RenderDailyReport(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "cabecera PDF")
}

func TestRenderDailyReport_DiaSinVentas(t *testing.T) {
	g := NewDailyReportPDF("Cafetería Central")
	empty := &dto.DailySalesReport{Date: "2026-03-08", Comparison: dto.DayComparison{PreviousDate: "2026-03-07"}}

	out, err := g.RenderDailyReport(context.Background(), empty)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = g.RenderDailyReport(context.Background(), nil)
	assert.Error(t, err)
}

func TestMoney_DosDecimalesYMiles(t *testing.T) {
	g := NewDailyReportPDF("x")

	assert.Equal(t, "$45.00", g.money(decimal.RequireFromString("45")))
	assert.Equal(t, "$1,234.50", g.money(decimal.RequireFromString("1234.5")))
}
