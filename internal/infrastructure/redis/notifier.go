package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Cafeteria-api/internal/application/order"
)

// OrdersChannel canal al que se suscriben tableros y pantallas de cocina.
const OrdersChannel = "pedidos_changes"

var _ order.Notifier = (*Notifier)(nil)

// Notifier publica eventos de pedido como JSON en OrdersChannel.
type Notifier struct {
	rdb     *goredis.Client
	channel string
}

// NewNotifier construye el publicador sobre OrdersChannel.
func NewNotifier(rdb *goredis.Client) *Notifier {
	return &Notifier{rdb: rdb, channel: OrdersChannel}
}

// Publish envía el evento. Sin suscriptores no es error.
func (n *Notifier) Publish(ctx context.Context, ev order.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal evento: %w", err)
	}
	if err := n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", n.channel, err)
	}
	return nil
}
