package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/order"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

// StatusUseCase aplica transiciones de estado con bloqueo de fila y registro en el historial.
type StatusUseCase struct {
	tx       TxRunner
	notifier Notifier
	log      *logger.Logger
	now      func() time.Time
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(tx TxRunner, notifier Notifier, log *logger.Logger) *StatusUseCase {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StatusUseCase{tx: tx, notifier: notifier, log: log, now: time.Now}
}

// UpdateStatus mueve el pedido a requested si la máquina de estados lo permite.
//
// Dentro de una transacción: SELECT FOR UPDATE del pedido, validación de la transición,
// UPDATE condicionado al estado leído y una entrada de historial. Si el UPDATE no afecta
// filas (otro proceso cambió el estado) devuelve domain.ErrConflict y no queda nada escrito.
func (uc *StatusUseCase) UpdateStatus(ctx context.Context, orderID, requested, userID string) (*dto.OrderResponse, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domain.Validation("id", "requerido")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, domain.Validation("usuario_id", "requerido")
	}
	if !entity.IsValidOrderStatus(requested) {
		return nil, domain.Validation("estado", "debe ser uno de: "+strings.Join(entity.OrderStatuses, ", "))
	}

	var updated *entity.Order
	err := uc.tx.RunOrder(ctx, func(orders repository.OrderRepository) error {
		o, err := orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return domain.Persistence("bloquear pedido", err)
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if !order.CanTransition(o.Status, requested) {
			return &domain.InvalidTransitionError{Current: o.Status, Requested: requested}
		}

		now := uc.now()
		if err := orders.UpdateStatus(ctx, o.ID, o.Status, requested, now); err != nil {
			return domain.Persistence("actualizar estado", err)
		}
		entry := &entity.OrderHistory{
			ID:             uuid.New().String(),
			OrderID:        o.ID,
			PreviousStatus: o.Status,
			NewStatus:      requested,
			UserID:         userID,
			CreatedAt:      now,
		}
		if err := orders.CreateHistory(ctx, entry); err != nil {
			return domain.Persistence("registrar historial", err)
		}

		o.Status = requested
		o.UpdatedAt = now
		updated = o
		return nil
	})
	if err != nil {
		return nil, domain.Persistence("transacción de estado", err)
	}

	uc.log.Info().Str("pedido_id", updated.ID).Str("estado", updated.Status).Str("usuario_id", userID).Msg("estado actualizado")
	publish(ctx, uc.notifier, uc.log, Event{Type: EventStatusUpdated, OrderID: updated.ID, Number: updated.Number, Status: updated.Status})

	return toOrderResponse(updated, nil, nil), nil
}
