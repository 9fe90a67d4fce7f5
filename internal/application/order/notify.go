package order

import (
	"context"

	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

func publish(ctx context.Context, n Notifier, log *logger.Logger, ev Event) {
	if err := n.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).
			Str("evento", ev.Type).
			Str("pedido_id", ev.OrderID).
			Msg("no se pudo publicar el evento del pedido")
	}
}
