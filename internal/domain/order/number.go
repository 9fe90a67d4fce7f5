// Package order contiene los servicios de dominio puros del ciclo de vida del pedido:
// numeración diaria, cálculo de totales y máquina de estados.
package order

import (
	"fmt"
	"time"
)

// GenerateNumber devuelve el número legible DDMMYY-NNN para la secuencia seq del día day.
// La secuencia se rellena con ceros hasta 3 dígitos; 1000 o más se muestra completo.
func GenerateNumber(seq int, day time.Time) string {
	return fmt.Sprintf("%s-%03d", day.Format("020106"), seq)
}

// DayStart devuelve las 00:00 del día de t en loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
