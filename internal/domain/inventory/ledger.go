// Package inventory contiene la aritmética pura del ledger de insumos.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
)

// QuantityScale decimales que admite una cantidad de insumo (NUMERIC(12,3)).
const QuantityScale = 3

// MaxQuantity mayor existencia representable en NUMERIC(12,3).
var MaxQuantity = decimal.RequireFromString("999999999.999")

// Apply calcula la cantidad resultante de un movimiento sobre before.
// qty debe ser positivo y con a lo más tres decimales; una salida mayor que la existencia
// devuelve InsufficientStockError.
func Apply(itemID string, before decimal.Decimal, movementType string, qty decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateQuantity(qty); err != nil {
		return before, err
	}
	switch movementType {
	case entity.MovementTypeInbound:
		after := before.Add(qty)
		if after.GreaterThan(MaxQuantity) {
			return before, domain.Validation("cantidad", "la existencia resultante excede el máximo permitido")
		}
		return after, nil
	case entity.MovementTypeOutbound:
		if qty.GreaterThan(before) {
			return before, &domain.InsufficientStockError{
				ItemID:    itemID,
				Available: before.String(),
				Requested: qty.String(),
			}
		}
		return before.Sub(qty), nil
	default:
		return before, domain.Validation("tipo_movimiento", "debe ser entrada o salida")
	}
}

// ValidateQuantity cantidad positiva, sin más de tres decimales y dentro del rango almacenable.
func ValidateQuantity(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return domain.Validation("cantidad", "debe ser mayor que cero")
	}
	if !qty.Equal(qty.Truncate(QuantityScale)) {
		return domain.Validation("cantidad", "máximo 3 decimales")
	}
	if qty.GreaterThan(MaxQuantity) {
		return domain.Validation("cantidad", "excede el máximo permitido")
	}
	return nil
}

// Shortfall cuánto falta para llegar al stock mínimo; cero si no hay faltante.
func Shortfall(quantity, minimum decimal.Decimal) decimal.Decimal {
	if quantity.GreaterThanOrEqual(minimum) {
		return decimal.Zero
	}
	return minimum.Sub(quantity)
}
