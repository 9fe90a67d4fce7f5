package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesLine línea vendida tal como la devuelve la consulta de reportes (join con products).
type SalesLine struct {
	ProductID       string
	ProductName     string
	ProductCategory string
	Quantity        int
	Subtotal        decimal.Decimal
}

// SalesOrder pedido contado como venta con sus líneas.
type SalesOrder struct {
	ID        string
	Number    string
	Type      string
	Status    string
	Total     decimal.Decimal
	CreatedAt time.Time
	Items     []SalesLine
}

// SalesRepository consultas de solo lectura para los reportes de ventas.
type SalesRepository interface {
	// ListSalesOrders pedidos con created_at en [from, to) y estado en statuses,
	// ordenados por created_at ascendente, con sus líneas en orden de inserción.
	ListSalesOrders(ctx context.Context, from, to time.Time, statuses []string) ([]SalesOrder, error)
}
