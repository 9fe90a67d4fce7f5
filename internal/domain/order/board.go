package order

import "time"

// Colores del tablero según el tiempo de espera.
const (
	WaitGreen  = "verde"
	WaitYellow = "amarillo"
	WaitRed    = "rojo"
)

// WaitingMinutes minutos completos transcurridos desde createdAt; nunca negativo.
func WaitingMinutes(createdAt, now time.Time) int {
	d := now.Sub(createdAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// WaitColor verde < 15 min, amarillo < 30 min, rojo a partir de 30.
func WaitColor(minutes int) string {
	switch {
	case minutes >= 30:
		return WaitRed
	case minutes >= 15:
		return WaitYellow
	default:
		return WaitGreen
	}
}
