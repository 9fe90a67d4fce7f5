package inventory

import (
	"context"

	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la cantidad del insumo y su movimiento se escriben juntos o no se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
