package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_inventario
			(id, inventario_id, tipo_movimiento, cantidad, cantidad_anterior, cantidad_nueva, observaciones, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.InventoryItemID, m.Type, m.Quantity, m.QuantityBefore, m.QuantityAfter,
		nullable(m.Notes), m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListByItem movimientos de un insumo, más recientes primero, con el nombre de quien lo registró.
func (r *InventoryMovementRepo) ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.InventoryMovement, error) {
	if !isUUID(itemID) {
		return nil, nil
	}
	query := `
		SELECT m.id, m.inventario_id, m.tipo_movimiento, m.cantidad, m.cantidad_anterior, m.cantidad_nueva,
		       m.observaciones, m.usuario_id, m.created_at, COALESCE(u.nombre, '')
		FROM movimientos_inventario m
		LEFT JOIN usuarios u ON u.id = m.usuario_id
		WHERE m.inventario_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var notes *string
		if err := rows.Scan(&m.ID, &m.InventoryItemID, &m.Type, &m.Quantity, &m.QuantityBefore, &m.QuantityAfter,
			&notes, &m.UserID, &m.CreatedAt, &m.UserName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Notes = deref(notes)
		list = append(list, &m)
	}
	return list, rows.Err()
}
