package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem insumo del inventario. Quantity solo cambia vía entradas/salidas del ledger.
type InventoryItem struct {
	ID           string
	Name         string
	UnitMeasure  string // kg, lt, pz...
	Quantity     decimal.Decimal
	MinimumStock decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock cantidad actual <= stock mínimo.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinimumStock)
}
