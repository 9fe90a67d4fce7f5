package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics métricas principales del reporte.
type SalesMetrics struct {
	TotalSales    decimal.Decimal `json:"total_ventas"`
	OrderCount    int             `json:"cantidad_pedidos"`
	AverageTicket decimal.Decimal `json:"ticket_promedio"`
}

// Breakdown cantidad y monto de un grupo (origen o categoría).
type Breakdown struct {
	Count int             `json:"cantidad"`
	Total decimal.Decimal `json:"total"`
}

// TopProduct producto más vendido por cantidad.
type TopProduct struct {
	Name     string          `json:"nombre"`
	Quantity int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// HourlySales ventas de una hora del día (0-23).
type HourlySales struct {
	Hour  int             `json:"hora"`
	Count int             `json:"cantidad"`
	Total decimal.Decimal `json:"total"`
}

// DayComparison diferencia contra el día anterior.
type DayComparison struct {
	PreviousDate  string          `json:"fecha_anterior"`
	PreviousTotal decimal.Decimal `json:"total_anterior"`
	Difference    decimal.Decimal `json:"diferencia"`
	Percentage    decimal.Decimal `json:"porcentaje"`
}

// SalesReport agregado de ventas contadas (listo, entregado).
type SalesReport struct {
	Metrics     SalesMetrics         `json:"metricas"`
	ByType      map[string]Breakdown `json:"por_origen"`
	ByCategory  map[string]Breakdown `json:"por_categoria"`
	TopProducts []TopProduct         `json:"top_productos"`
}

// SalesOrderLine línea vendida dentro del detalle del reporte diario.
type SalesOrderLine struct {
	ProductName     string          `json:"producto_nombre"`
	ProductCategory string          `json:"producto_categoria"`
	Quantity        int             `json:"cantidad"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// SalesOrderResponse pedido contado del día con sus líneas.
type SalesOrderResponse struct {
	ID        string           `json:"id"`
	Number    string           `json:"numero_pedido"`
	Type      string           `json:"tipo"`
	Status    string           `json:"estado"`
	Total     decimal.Decimal  `json:"total"`
	CreatedAt time.Time        `json:"created_at"`
	Items     []SalesOrderLine `json:"items"`
}

// DailySalesReport respuesta de GET /api/reportes/ventas-diarias.
type DailySalesReport struct {
	Date string `json:"fecha"`
	SalesReport
	Hourly     []HourlySales        `json:"ventas_por_hora"`
	Comparison DayComparison        `json:"comparacion"`
	Orders     []SalesOrderResponse `json:"pedidos"`
}

// PeriodSalesReport respuesta de GET /api/reportes/ventas-periodo.
type PeriodSalesReport struct {
	From string `json:"fecha_inicio"`
	To   string `json:"fecha_fin"`
	SalesReport
}
