package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
)

// OrderFilter filtros para listar pedidos. Campos vacíos no filtran.
type OrderFilter struct {
	Status    string
	Type      string
	Statuses  []string
	From      *time.Time // created_at >= From
	To        *time.Time // created_at < To
	Ascending bool       // por defecto created_at DESC
	Limit     int
}

// OrderRepository define el puerto de persistencia para pedidos, líneas e historial.
// Los métodos Get devuelven (nil, nil) cuando el registro no existe.
type OrderRepository interface {
	// Create devuelve domain.ErrConflict si numero_pedido ya existe.
	Create(ctx context.Context, order *entity.Order) error
	CreateItems(ctx context.Context, items []*entity.OrderItem) error
	CreateHistory(ctx context.Context, entry *entity.OrderHistory) error
	// Delete solo se usa como compensación de una creación fallida.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila del pedido (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	// UpdateStatus cambia el estado solo si sigue siendo expected; si no, domain.ErrConflict.
	UpdateStatus(ctx context.Context, id, expected, next string, at time.Time) error
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	ListItemsByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]*entity.OrderItem, error)
	ListHistory(ctx context.Context, orderID string) ([]*entity.OrderHistory, error)
}

// DaySequence asigna el siguiente consecutivo (1, 2, 3...) del día de forma atómica.
type DaySequence interface {
	Next(ctx context.Context, day time.Time) (int, error)
}
