package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeInbound  = "entrada"
	MovementTypeOutbound = "salida"
)

// InventoryMovement registro de auditoría inmutable de un ajuste de existencias.
// QuantityAfter = QuantityBefore + Quantity (entrada) o - Quantity (salida).
type InventoryMovement struct {
	ID              string
	InventoryItemID string
	Type            string
	Quantity        decimal.Decimal // siempre positivo
	QuantityBefore  decimal.Decimal
	QuantityAfter   decimal.Decimal
	Notes           string
	UserID          string
	CreatedAt       time.Time

	UserName string // solo lectura
}
