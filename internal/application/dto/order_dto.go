package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest línea solicitada: producto y cantidad.
type CreateOrderItemRequest struct {
	ProductID string `json:"producto_id" validate:"required"`
	Quantity  int    `json:"cantidad" validate:"required,min=1,max=999"`
}

// CreateOrderRequest body para POST /api/pedidos.
type CreateOrderRequest struct {
	Type           string                   `json:"tipo" validate:"required,oneof=mostrador uber_eats rappi didi_food"`
	Items          []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes          string                   `json:"observaciones,omitempty" validate:"max=500"`
	CustomerName   string                   `json:"cliente_nombre,omitempty" validate:"max=200"`
	CustomerPhone  string                   `json:"cliente_telefono,omitempty" validate:"max=30"`
	Address        string                   `json:"direccion,omitempty" validate:"max=300"`
	ExternalNumber string                   `json:"numero_externo,omitempty" validate:"max=100"`
}

// UpdateOrderStatusRequest body para PATCH /api/pedidos/:id/estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=pendiente en_preparacion listo entregado cancelado"`
}

// OrderFilterRequest query de GET /api/pedidos. Fecha en formato YYYY-MM-DD.
type OrderFilterRequest struct {
	Status string `query:"estado"`
	Type   string `query:"tipo"`
	Date   string `query:"fecha"`
}

// OrderItemResponse línea de pedido.
type OrderItemResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"producto_id"`
	ProductName     string          `json:"producto_nombre,omitempty"`
	ProductCategory string          `json:"producto_categoria,omitempty"`
	Quantity        int             `json:"cantidad"`
	UnitPrice       decimal.Decimal `json:"precio_unitario"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// OrderHistoryResponse entrada del historial de estados.
type OrderHistoryResponse struct {
	ID             string    `json:"id"`
	PreviousStatus *string   `json:"estado_anterior"`
	NewStatus      string    `json:"estado_nuevo"`
	UserID         string    `json:"usuario_id"`
	UserName       string    `json:"usuario_nombre,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderResponse pedido con líneas y, en el detalle, historial.
type OrderResponse struct {
	ID             string                 `json:"id"`
	Number         string                 `json:"numero_pedido"`
	Type           string                 `json:"tipo"`
	Status         string                 `json:"estado"`
	Total          decimal.Decimal        `json:"total"`
	Notes          string                 `json:"observaciones,omitempty"`
	CustomerName   string                 `json:"cliente_nombre,omitempty"`
	CustomerPhone  string                 `json:"cliente_telefono,omitempty"`
	Address        string                 `json:"direccion,omitempty"`
	ExternalNumber string                 `json:"numero_externo,omitempty"`
	UserID         string                 `json:"usuario_id"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	Items          []OrderItemResponse    `json:"items"`
	History        []OrderHistoryResponse `json:"historial,omitempty"`
}

// ActiveOrderResponse pedido del tablero de cocina con su tiempo de espera.
type ActiveOrderResponse struct {
	OrderResponse
	WaitingMinutes int    `json:"tiempo_espera"`
	Color          string `json:"color"` // verde | amarillo | rojo
}
