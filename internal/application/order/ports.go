package order

import (
	"context"

	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con el repositorio de pedidos atado a esa tx.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// Tipos de evento publicados al cambiar un pedido.
const (
	EventOrderCreated  = "pedido_creado"
	EventStatusUpdated = "estado_actualizado"
)

// Event cambio de un pedido para los tableros (cocina, mostrador).
type Event struct {
	Type    string `json:"evento"`
	OrderID string `json:"pedido_id"`
	Number  string `json:"numero_pedido"`
	Status  string `json:"estado"`
}

// Notifier publica eventos de pedidos. Es best effort: un error nunca revierte la operación.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// NoopNotifier descarta los eventos (Redis deshabilitado); los clientes consultan /api/pedidos/activos.
type NoopNotifier struct{}

func (NoopNotifier) Publish(context.Context, Event) error { return nil }
