package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos (origen) de pedido.
const (
	OrderTypeMostrador = "mostrador"
	OrderTypeUberEats  = "uber_eats"
	OrderTypeRappi     = "rappi"
	OrderTypeDidiFood  = "didi_food"
)

// Estados del pedido. entregado y cancelado son terminales.
const (
	OrderStatusPending       = "pendiente"
	OrderStatusInPreparation = "en_preparacion"
	OrderStatusReady         = "listo"
	OrderStatusDelivered     = "entregado"
	OrderStatusCanceled      = "cancelado"
)

// OrderTypes lista fija de orígenes válidos, en orden de presentación.
var OrderTypes = []string{OrderTypeMostrador, OrderTypeUberEats, OrderTypeRappi, OrderTypeDidiFood}

// OrderStatuses lista fija de estados válidos.
var OrderStatuses = []string{
	OrderStatusPending, OrderStatusInPreparation, OrderStatusReady,
	OrderStatusDelivered, OrderStatusCanceled,
}

// CountedStatuses estados que cuentan como venta en los reportes.
var CountedStatuses = []string{OrderStatusReady, OrderStatusDelivered}

// ActiveStatuses estados que aparecen en el tablero de cocina/barra.
var ActiveStatuses = []string{OrderStatusPending, OrderStatusInPreparation}

// IsValidOrderType indica si t pertenece al conjunto de orígenes.
func IsValidOrderType(t string) bool { return contains(OrderTypes, t) }

// IsValidOrderStatus indica si s pertenece al conjunto de estados.
func IsValidOrderStatus(s string) bool { return contains(OrderStatuses, s) }

// Order cabecera de un pedido. Total se fija al crear y no se recalcula.
type Order struct {
	ID             string
	Number         string // DDMMYY-NNN
	Type           string
	Status         string
	Total          decimal.Decimal
	Notes          string
	CustomerName   string
	CustomerPhone  string
	Address        string
	ExternalNumber string // referencia de la plataforma (Uber Eats, Rappi...)
	UserID         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
