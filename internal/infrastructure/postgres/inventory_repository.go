package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, nombre, unidad_medida, cantidad_actual, stock_minimo, created_at, updated_at`

// InventoryRepo existencias de insumos sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un insumo.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventario (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.UnitMeasure, item.Quantity, item.MinimumStock, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo sin bloquear.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate obtiene el insumo y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *InventoryRepo) get(ctx context.Context, id, lock string) (*entity.InventoryItem, error) {
	if !isUUID(id) {
		return nil, nil
	}
	item, err := scanInventoryItem(r.q.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventario WHERE id = $1`+lock, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

// UpdateQuantity escribe next solo si cantidad_actual sigue siendo expected.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id string, expected, next decimal.Decimal, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventario SET cantidad_actual = $3, updated_at = $4 WHERE id = $1 AND cantidad_actual = $2`,
		id, expected, next, at,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("cantidad de %s cambió concurrentemente: %w", id, domain.ErrConflict)
	}
	return nil
}

// List ordenado por nombre; onlyLowStock filtra cantidad_actual <= stock_minimo.
func (r *InventoryRepo) List(ctx context.Context, onlyLowStock bool) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventario`
	if onlyLowStock {
		query += ` WHERE cantidad_actual <= stock_minimo`
	}
	query += ` ORDER BY nombre`
	return r.list(ctx, query)
}

// ListLowStock insumos en o bajo el mínimo, los más escasos primero.
func (r *InventoryRepo) ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error) {
	return r.list(ctx, `SELECT `+inventoryColumns+` FROM inventario
		WHERE cantidad_actual <= stock_minimo
		ORDER BY cantidad_actual ASC, nombre`)
}

func (r *InventoryRepo) list(ctx context.Context, query string) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	if err := row.Scan(&i.ID, &i.Name, &i.UnitMeasure, &i.Quantity, &i.MinimumStock, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}
