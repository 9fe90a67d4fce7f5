package entity

import "time"

// OrderHistory registro append-only de un cambio de estado.
// PreviousStatus vacío = entrada inicial (NULL en BD).
type OrderHistory struct {
	ID             string
	OrderID        string
	PreviousStatus string
	NewStatus      string
	UserID         string
	CreatedAt      time.Time

	UserName string // solo lectura
}
