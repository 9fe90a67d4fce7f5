package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

var _ repository.DaySequence = (*DaySequence)(nil)

// DaySequence consecutivo diario de pedidos en la tabla secuencia_pedidos.
// El upsert con RETURNING es atómico: dos pedidos simultáneos nunca reciben el mismo número.
type DaySequence struct {
	q Querier
}

// NewDaySequence construye la secuencia sobre el pool.
func NewDaySequence(q Querier) *DaySequence {
	return &DaySequence{q: q}
}

// Next incrementa y devuelve el contador del día (el primero del día es 1).
func (s *DaySequence) Next(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := s.q.QueryRow(ctx, `
		INSERT INTO secuencia_pedidos (dia, ultimo) VALUES ($1::date, 1)
		ON CONFLICT (dia) DO UPDATE SET ultimo = secuencia_pedidos.ultimo + 1
		RETURNING ultimo`, day.Format(time.DateOnly)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next order sequence: %w", err)
	}
	return n, nil
}
