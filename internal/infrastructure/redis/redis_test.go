package redis_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-api/internal/application/order"
	"github.com/jhoicas/Cafeteria-api/internal/infrastructure/redis"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := redis.NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := redis.NewClient(context.Background(), "no-es-url")
	assert.Error(t, err)
}

func TestDaySequence_IncrementaPorDia(t *testing.T) {
	mr, rdb := newRedis(t)
	seq := redis.NewDaySequence(rdb)
	ctx := context.Background()
	day := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	for want := 1; want <= 3; want++ {
		got, err := seq.Next(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	got, err := seq.Next(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	key := seq.Key(day)
	assert.Equal(t, "pedidos:seq:2026-03-07", key)
	assert.Equal(t, redis.SequenceTTL, mr.TTL(key))
}

func TestDaySequence_ConcurrenteSinRepetidos(t *testing.T) {
	_, rdb := newRedis(t)
	seq := redis.NewDaySequence(rdb)
	day := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	const n = 50
	var (
		mu   sync.Mutex
		seen = map[int]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := seq.Next(context.Background(), day)
			assert.NoError(t, err)
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestDaySequence_ErrorDeConexion(t *testing.T) {
	mr, rdb := newRedis(t)
	seq := redis.NewDaySequence(rdb)
	mr.Close()

	_, err := seq.Next(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestNotifier_PublicaJSON(t *testing.T) {
	_, rdb := newRedis(t)
	ctx := context.Background()
	sub := rdb.Subscribe(ctx, redis.OrdersChannel)
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	n := redis.NewNotifier(rdb)
	require.NoError(t, n.Publish(ctx, order.Event{
		Type: order.EventStatusUpdated, OrderID: "o-1", Number: "070326-001", Status: "listo",
	}))

	select {
	case msg := <-sub.Channel():
		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "estado_actualizado", got["evento"])
		assert.Equal(t, "o-1", got["pedido_id"])
		assert.Equal(t, "070326-001", got["numero_pedido"])
		assert.Equal(t, "listo", got["estado"])
	case <-time.After(2 * time.Second):
		t.Fatal("no llegó el evento")
	}
}
