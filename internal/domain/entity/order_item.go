package entity

import "github.com/shopspring/decimal"

// OrderItem línea de pedido. UnitPrice es la foto del precio del catálogo al crear el pedido.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal

	// Solo lectura (join con products)
	ProductName     string
	ProductCategory string
}
