package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryRepository define el puerto para insumos. Usado dentro de transacciones del ledger.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	// UpdateQuantity compare-and-swap: escribe next solo si la cantidad sigue siendo expected.
	// Si otra transacción la cambió devuelve domain.ErrConflict.
	UpdateQuantity(ctx context.Context, id string, expected, next decimal.Decimal, at time.Time) error
	// List ordenado por nombre; onlyLowStock filtra cantidad_actual <= stock_minimo.
	List(ctx context.Context, onlyLowStock bool) ([]*entity.InventoryItem, error)
	// ListLowStock cantidad_actual <= stock_minimo, ascendente por cantidad_actual.
	ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error)
}
