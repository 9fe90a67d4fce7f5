package order

import "github.com/jhoicas/Cafeteria-api/internal/domain/entity"

// transitions tabla de adyacencia. Los estados terminales no tienen salidas.
var transitions = map[string][]string{
	entity.OrderStatusPending:       {entity.OrderStatusInPreparation, entity.OrderStatusCanceled},
	entity.OrderStatusInPreparation: {entity.OrderStatusReady, entity.OrderStatusCanceled},
	entity.OrderStatusReady:         {entity.OrderStatusDelivered, entity.OrderStatusCanceled},
	entity.OrderStatusDelivered:     {},
	entity.OrderStatusCanceled:      {},
}

// CanTransition indica si se puede pasar de current a requested. Cualquier par fuera de la tabla es false,
// incluido current == requested.
func CanTransition(current, requested string) bool {
	for _, next := range transitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// NextStatuses estados alcanzables desde current (copia; vacío si es terminal o desconocido).
func NextStatuses(current string) []string {
	next := transitions[current]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// IsTerminal entregado o cancelado.
func IsTerminal(status string) bool {
	next, ok := transitions[status]
	return ok && len(next) == 0
}
