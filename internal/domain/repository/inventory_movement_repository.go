package repository

import (
	"context"

	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para movimientos (append-only).
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// ListByItem más recientes primero.
	ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.InventoryMovement, error)
}
