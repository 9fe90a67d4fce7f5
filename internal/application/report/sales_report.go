package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// DateLayout formato de fecha de los reportes (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DailyPDFRenderer genera el PDF del reporte diario.
type DailyPDFRenderer interface {
	RenderDailyReport(ctx context.Context, report *dto.DailySalesReport) ([]byte, error)
}

// SalesReportUseCase reportes de ventas sobre los estados contados (listo, entregado).
//
// Fuente de datos: SalesRepository (consultas read-only).
type SalesReportUseCase struct {
	sales repository.SalesRepository
	pdf   DailyPDFRenderer
	loc   *time.Location
}

// NewSalesReportUseCase construye el caso de uso. loc define los límites de cada día.
func NewSalesReportUseCase(sales repository.SalesRepository, pdf DailyPDFRenderer, loc *time.Location) *SalesReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &SalesReportUseCase{sales: sales, pdf: pdf, loc: loc}
}

// Daily reporte del día con histograma por hora y comparación contra el día anterior.
//
// Dos consultas en paralelo:
//  1. ventas del día      → métricas, desgloses, ranking, histograma
//  2. ventas del anterior → comparación
func (uc *SalesReportUseCase) Daily(ctx context.Context, date string) (*dto.DailySalesReport, error) {
	day, err := uc.parseDate("fecha", date)
	if err != nil {
		return nil, err
	}
	next := day.AddDate(0, 0, 1)
	prev := day.AddDate(0, 0, -1)

	type result struct {
		orders []repository.SalesOrder
		err    error
	}
	todayCh := make(chan result, 1)
	prevCh := make(chan result, 1)

	go func() {
		orders, err := uc.sales.ListSalesOrders(ctx, day, next, entity.CountedStatuses)
		todayCh <- result{orders, err}
	}()
	go func() {
		orders, err := uc.sales.ListSalesOrders(ctx, prev, day, entity.CountedStatuses)
		prevCh <- result{orders, err}
	}()

	today := <-todayCh
	previous := <-prevCh

	if today.err != nil {
		return nil, domain.Persistence("reporte: ventas del día", today.err)
	}
	if previous.err != nil {
		return nil, domain.Persistence("reporte: ventas del día anterior", previous.err)
	}

	agg := Aggregate(today.orders)
	prevTotal := Aggregate(previous.orders).Metrics.TotalSales

	return &dto.DailySalesReport{
		Date:        day.Format(DateLayout),
		SalesReport: agg,
		Hourly:      Hourly(today.orders, uc.loc),
		Comparison:  Compare(agg.Metrics.TotalSales, prevTotal, prev.Format(DateLayout)),
		Orders:      SalesOrders(today.orders),
	}, nil
}

// Period reporte del rango de fechas inclusivo [from, to].
func (uc *SalesReportUseCase) Period(ctx context.Context, from, to string) (*dto.PeriodSalesReport, error) {
	start, err := uc.parseDate("fecha_inicio", from)
	if err != nil {
		return nil, err
	}
	end, err := uc.parseDate("fecha_fin", to)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, domain.Validation("fecha_inicio", "no puede ser posterior a fecha_fin")
	}

	orders, err := uc.sales.ListSalesOrders(ctx, start, end.AddDate(0, 0, 1), entity.CountedStatuses)
	if err != nil {
		return nil, domain.Persistence("reporte: ventas del período", err)
	}
	return &dto.PeriodSalesReport{
		From:        start.Format(DateLayout),
		To:          end.Format(DateLayout),
		SalesReport: Aggregate(orders),
	}, nil
}

// DailyPDF genera el reporte diario en PDF. Devuelve los bytes y el nombre sugerido del archivo.
func (uc *SalesReportUseCase) DailyPDF(ctx context.Context, date string) ([]byte, string, error) {
	rep, err := uc.Daily(ctx, date)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.RenderDailyReport(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return doc, "ventas-" + rep.Date + ".pdf", nil
}

func (uc *SalesReportUseCase) parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.Validation(field, "requerida")
	}
	t, err := time.ParseInLocation(DateLayout, s, uc.loc)
	if err != nil {
		return time.Time{}, domain.Validation(field, "formato esperado YYYY-MM-DD")
	}
	return t, nil
}
