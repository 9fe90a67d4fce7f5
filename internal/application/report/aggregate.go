// Package report contiene el agregador de ventas y los reportes diario y por período.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// TopProductsLimit número de productos en el ranking.
const TopProductsLimit = 10

var hundred = decimal.NewFromInt(100)

// Aggregate calcula métricas, desgloses y ranking sobre pedidos ya filtrados por estado contado.
// No toca la persistencia. Montos redondeados a 2 decimales.
func Aggregate(orders []repository.SalesOrder) dto.SalesReport {
	total := decimal.Zero
	byType := map[string]dto.Breakdown{}
	byCategory := map[string]dto.Breakdown{}

	type productAcc struct {
		name     string
		quantity int
		total    decimal.Decimal
	}
	var ranking []*productAcc // orden de primera aparición
	byProduct := map[string]*productAcc{}

	for _, o := range orders {
		total = total.Add(o.Total)

		b := byType[o.Type]
		b.Count++
		b.Total = b.Total.Add(o.Total)
		byType[o.Type] = b

		for _, it := range o.Items {
			c := byCategory[it.ProductCategory]
			c.Count += it.Quantity
			c.Total = c.Total.Add(it.Subtotal)
			byCategory[it.ProductCategory] = c

			acc, ok := byProduct[it.ProductID]
			if !ok {
				acc = &productAcc{name: it.ProductName}
				byProduct[it.ProductID] = acc
				ranking = append(ranking, acc)
			}
			acc.quantity += it.Quantity
			acc.total = acc.total.Add(it.Subtotal)
		}
	}

	// Empates conservan el orden de primera aparición
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].quantity > ranking[j].quantity })
	if len(ranking) > TopProductsLimit {
		ranking = ranking[:TopProductsLimit]
	}
	top := make([]dto.TopProduct, 0, len(ranking))
	for _, p := range ranking {
		top = append(top, dto.TopProduct{Name: p.name, Quantity: p.quantity, Total: p.total.Round(2)})
	}

	for k, b := range byType {
		b.Total = b.Total.Round(2)
		byType[k] = b
	}
	for k, c := range byCategory {
		c.Total = c.Total.Round(2)
		byCategory[k] = c
	}

	return dto.SalesReport{
		Metrics: dto.SalesMetrics{
			TotalSales:    total.Round(2),
			OrderCount:    len(orders),
			AverageTicket: average(total, len(orders)),
		},
		ByType:      byType,
		ByCategory:  byCategory,
		TopProducts: top,
	}
}

// Hourly histograma por hora local de creación; solo horas con pedidos, ascendente.
func Hourly(orders []repository.SalesOrder, loc *time.Location) []dto.HourlySales {
	var buckets [24]dto.HourlySales
	for _, o := range orders {
		h := o.CreatedAt.In(loc).Hour()
		buckets[h].Count++
		buckets[h].Total = buckets[h].Total.Add(o.Total)
	}
	out := make([]dto.HourlySales, 0, 24)
	for h, b := range buckets {
		if b.Count == 0 {
			continue
		}
		out = append(out, dto.HourlySales{Hour: h, Count: b.Count, Total: b.Total.Round(2)})
	}
	return out
}

// Compare diferencia y porcentaje contra el total anterior; porcentaje 0 si el anterior es 0.
func Compare(current, previous decimal.Decimal, previousDate string) dto.DayComparison {
	diff := current.Sub(previous)
	pct := decimal.Zero
	if !previous.IsZero() {
		pct = diff.Div(previous).Mul(hundred)
	}
	return dto.DayComparison{
		PreviousDate:  previousDate,
		PreviousTotal: previous.Round(2),
		Difference:    diff.Round(2),
		Percentage:    pct.Round(2),
	}
}

func average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// SalesOrders detalle de los pedidos contados en orden de creación; nunca nil.
func SalesOrders(orders []repository.SalesOrder) []dto.SalesOrderResponse {
	out := make([]dto.SalesOrderResponse, 0, len(orders))
	for _, o := range orders {
		lines := make([]dto.SalesOrderLine, 0, len(o.Items))
		for _, it := range o.Items {
			lines = append(lines, dto.SalesOrderLine{
				ProductName:     it.ProductName,
				ProductCategory: it.ProductCategory,
				Quantity:        it.Quantity,
				Subtotal:        it.Subtotal,
			})
		}
		out = append(out, dto.SalesOrderResponse{
			ID:        o.ID,
			Number:    o.Number,
			Type:      o.Type,
			Status:    o.Status,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
			Items:     lines,
		})
	}
	return out
}
