package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura para los reportes de ventas.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de reportes.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// ListSalesOrders pedidos del rango [from, to) en los estados dados, con sus líneas.
// Dos consultas: cabeceras y después todas las líneas de esos pedidos con ANY.
func (r *SalesRepo) ListSalesOrders(ctx context.Context, from, to time.Time, statuses []string) ([]repository.SalesOrder, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, numero_pedido, tipo, estado, total, created_at
		FROM pedidos
		WHERE created_at >= $1 AND created_at < $2 AND estado = ANY($3)
		ORDER BY created_at ASC`, from, to, statuses)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	var (
		orders []repository.SalesOrder
		ids    []string
	)
	for rows.Next() {
		var o repository.SalesOrder
		if err := rows.Scan(&o.ID, &o.Number, &o.Type, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.q.Query(ctx, `
		SELECT i.pedido_id, i.producto_id, COALESCE(p.nombre, ''), COALESCE(p.categoria, ''), i.cantidad, i.subtotal
		FROM pedido_items i
		LEFT JOIN productos p ON p.id = i.producto_id
		WHERE i.pedido_id = ANY($1)
		ORDER BY i.posicion`, ids)
	if err != nil {
		return nil, fmt.Errorf("list sales lines: %w", err)
	}
	defer lines.Close()
	byOrder := make(map[string][]repository.SalesLine, len(orders))
	for lines.Next() {
		var orderID string
		var l repository.SalesLine
		if err := lines.Scan(&orderID, &l.ProductID, &l.ProductName, &l.ProductCategory, &l.Quantity, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sales line: %w", err)
		}
		byOrder[orderID] = append(byOrder[orderID], l)
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("list sales lines: %w", err)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}
