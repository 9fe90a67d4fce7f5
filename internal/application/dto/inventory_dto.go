package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventario/:id/movimientos.
type RegisterMovementRequest struct {
	Type     string          `json:"tipo_movimiento" validate:"required,oneof=entrada salida"`
	Quantity decimal.Decimal `json:"cantidad" validate:"gt=0"`
	Notes    string          `json:"observaciones,omitempty" validate:"max=500"`
}

// InventoryItemResponse insumo con bandera de alerta.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre"`
	UnitMeasure  string          `json:"unidad_medida"`
	Quantity     decimal.Decimal `json:"cantidad_actual"`
	MinimumStock decimal.Decimal `json:"stock_minimo"`
	LowStock     bool            `json:"alerta_stock"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockAlertResponse insumo bajo el mínimo y cuánto falta para reponerlo.
type StockAlertResponse struct {
	InventoryItemResponse
	Shortfall decimal.Decimal `json:"faltante"`
}

// MovementResponse movimiento del ledger.
type MovementResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventario_id"`
	Type            string          `json:"tipo_movimiento"`
	Quantity        decimal.Decimal `json:"cantidad"`
	QuantityBefore  decimal.Decimal `json:"cantidad_anterior"`
	QuantityAfter   decimal.Decimal `json:"cantidad_nueva"`
	Notes           string          `json:"observaciones,omitempty"`
	UserID          string          `json:"usuario_id"`
	UserName        string          `json:"usuario_nombre,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
