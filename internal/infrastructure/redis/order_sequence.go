package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

var _ repository.DaySequence = (*DaySequence)(nil)

// SequenceTTL vida de la llave diaria; pasa de medianoche para cubrir cualquier zona horaria.
const SequenceTTL = 48 * time.Hour

// DaySequence consecutivo diario con INCR: atómico entre todas las instancias de la API.
type DaySequence struct {
	rdb    *goredis.Client
	prefix string
}

// NewDaySequence construye la secuencia con el prefijo pedidos:seq.
func NewDaySequence(rdb *goredis.Client) *DaySequence {
	return &DaySequence{rdb: rdb, prefix: "pedidos:seq"}
}

// Key llave del día, p.ej. pedidos:seq:2026-03-07.
func (s *DaySequence) Key(day time.Time) string {
	return s.prefix + ":" + day.Format(time.DateOnly)
}

// Next incrementa y devuelve el contador del día.
func (s *DaySequence) Next(ctx context.Context, day time.Time) (int, error) {
	key := s.Key(day)
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, SequenceTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	return int(incr.Val()), nil
}
