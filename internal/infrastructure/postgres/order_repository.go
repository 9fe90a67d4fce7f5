package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, numero_pedido, tipo, estado, total, observaciones, cliente_nombre, cliente_telefono,
	direccion, numero_externo, usuario_id, created_at, updated_at`

// OrderRepo pedidos, líneas e historial sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera. numero_pedido repetido -> domain.ErrConflict.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO pedidos (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Number, o.Type, o.Status, o.Total,
		nullable(o.Notes), nullable(o.CustomerName), nullable(o.CustomerPhone),
		nullable(o.Address), nullable(o.ExternalNumber),
		o.UserID, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("numero_pedido %s: %w", o.Number, domain.ErrConflict)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItems inserta todas las líneas en un solo batch.
func (r *OrderRepo) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO pedido_items (id, pedido_id, producto_id, cantidad, precio_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// CreateHistory agrega una entrada al historial. PreviousStatus vacío se guarda como NULL.
func (r *OrderRepo) CreateHistory(ctx context.Context, h *entity.OrderHistory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO historial_pedidos (id, pedido_id, estado_anterior, estado_nuevo, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, h.OrderID, nullable(h.PreviousStatus), h.NewStatus, h.UserID, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order history: %w", err)
	}
	return nil
}

// Delete borra el pedido; líneas e historial caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera del pedido.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate obtiene la cabecera y bloquea la fila (SELECT FOR UPDATE).
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *OrderRepo) get(ctx context.Context, id, lock string) (*entity.Order, error) {
	if !isUUID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM pedidos WHERE id = $1`+lock, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// UpdateStatus cambia estado solo si sigue siendo expected.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, expected, next string, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE pedidos SET estado = $3, updated_at = $4 WHERE id = $1 AND estado = $2`,
		id, expected, next, at,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("estado de %s ya no es %s: %w", id, expected, domain.ErrConflict)
	}
	return nil
}

// List aplica los filtros no vacíos; por defecto más recientes primero.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("estado = $%d", f.Status)
	}
	if len(f.Statuses) > 0 {
		add("estado = ANY($%d)", f.Statuses)
	}
	if f.Type != "" {
		add("tipo = $%d", f.Type)
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at < $%d", *f.To)
	}

	query := `SELECT ` + orderColumns + ` FROM pedidos`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if f.Ascending {
		query += " ORDER BY created_at ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

const itemSelect = `
	SELECT i.id, i.pedido_id, i.producto_id, i.cantidad, i.precio_unitario, i.subtotal,
	       COALESCE(p.nombre, ''), COALESCE(p.categoria, '')
	FROM pedido_items i
	LEFT JOIN productos p ON p.id = i.producto_id`

// ListItems líneas del pedido en orden de captura, con nombre y categoría del producto.
func (r *OrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	if !isUUID(orderID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, itemSelect+` WHERE i.pedido_id = $1 ORDER BY i.posicion`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListItemsByOrderIDs líneas de varios pedidos en una consulta, agrupadas por pedido.
func (r *OrderRepo) ListItemsByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]*entity.OrderItem, error) {
	out := make(map[string][]*entity.OrderItem)
	orderIDs = onlyUUIDs(orderIDs)
	if len(orderIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, itemSelect+` WHERE i.pedido_id = ANY($1) ORDER BY i.posicion`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

// ListHistory historial cronológico con el nombre del usuario que hizo cada cambio.
func (r *OrderRepo) ListHistory(ctx context.Context, orderID string) ([]*entity.OrderHistory, error) {
	if !isUUID(orderID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT h.id, h.pedido_id, h.estado_anterior, h.estado_nuevo, h.usuario_id, h.created_at, COALESCE(u.nombre, '')
		FROM historial_pedidos h
		LEFT JOIN usuarios u ON u.id = h.usuario_id
		WHERE h.pedido_id = $1
		ORDER BY h.created_at ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order history: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderHistory
	for rows.Next() {
		var h entity.OrderHistory
		var prev *string
		if err := rows.Scan(&h.ID, &h.OrderID, &prev, &h.NewStatus, &h.UserID, &h.CreatedAt, &h.UserName); err != nil {
			return nil, fmt.Errorf("scan order history: %w", err)
		}
		h.PreviousStatus = deref(prev)
		list = append(list, &h)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o                                     entity.Order
		notes, name, phone, address, external *string
	)
	if err := row.Scan(&o.ID, &o.Number, &o.Type, &o.Status, &o.Total, &notes, &name, &phone,
		&address, &external, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Notes = deref(notes)
	o.CustomerName = deref(name)
	o.CustomerPhone = deref(phone)
	o.Address = deref(address)
	o.ExternalNumber = deref(external)
	return &o, nil
}

func scanOrderItem(rows pgx.Rows) (*entity.OrderItem, error) {
	var it entity.OrderItem
	if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal,
		&it.ProductName, &it.ProductCategory); err != nil {
		return nil, fmt.Errorf("scan order item: %w", err)
	}
	return &it, nil
}
