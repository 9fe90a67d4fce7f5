// Package order contiene los casos de uso del pedido: creación, cambios de estado y consultas.
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/order"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

// maxNumberAttempts intentos de insertar el pedido cuando numero_pedido choca con otro.
const maxNumberAttempts = 3

// MaxItemQuantity unidades máximas por línea de pedido.
const MaxItemQuantity = 999

// maxOrderTotal mayor total representable en NUMERIC(12,2).
var maxOrderTotal = decimal.RequireFromString("9999999999.99")

// CreateOrderUseCase orquesta la creación de un pedido con sus líneas y su historial inicial.
//
// No usa una transacción: si fallan las líneas o el historial, borra el pedido recién
// insertado (compensación) para no dejar pedidos sin líneas.
type CreateOrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	sequence repository.DaySequence
	notifier Notifier
	loc      *time.Location
	log      *logger.Logger
	now      func() time.Time
}

// NewCreateOrderUseCase construye el caso de uso. loc define el día de la numeración.
func NewCreateOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	sequence repository.DaySequence,
	notifier Notifier,
	loc *time.Location,
	log *logger.Logger,
) *CreateOrderUseCase {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CreateOrderUseCase{
		orders:   orders,
		products: products,
		sequence: sequence,
		notifier: notifier,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *CreateOrderUseCase) WithClock(now func() time.Time) *CreateOrderUseCase {
	uc.now = now
	return uc
}

// Create valida la solicitud, congela precios, numera y persiste el pedido.
func (uc *CreateOrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validateCreate(userID, in); err != nil {
		return nil, err
	}

	// 1. Productos en una sola consulta (ids distintos)
	ids := distinctProductIDs(in.Items)
	found, err := uc.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, domain.Persistence("obtener productos", err)
	}
	byID := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	var missing []string
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.ProductsNotFoundError{IDs: missing}
	}

	// 2. Disponibilidad: cualquier producto no disponible rechaza el pedido completo
	var unavailable []string
	for _, id := range ids {
		if p := byID[id]; !p.Available {
			unavailable = append(unavailable, p.Name)
		}
	}
	if len(unavailable) > 0 {
		return nil, &domain.ProductsUnavailableError{Products: unavailable}
	}

	// 3-4. Foto del precio y total
	lines := make([]order.Line, 0, len(in.Items))
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, req := range in.Items {
		p := byID[strings.TrimSpace(req.ProductID)]
		lines = append(lines, order.Line{Quantity: req.Quantity, UnitPrice: p.Price})
		items = append(items, &entity.OrderItem{
			ID:              uuid.New().String(),
			ProductID:       p.ID,
			Quantity:        req.Quantity,
			UnitPrice:       p.Price,
			Subtotal:        order.Subtotal(req.Quantity, p.Price),
			ProductName:     p.Name,
			ProductCategory: p.Category,
		})
	}

	total := order.CalculateTotal(lines)
	if total.GreaterThan(maxOrderTotal) {
		return nil, domain.Validation("items", "el total del pedido excede el máximo permitido")
	}

	now := uc.now()
	o := &entity.Order{
		ID:             uuid.New().String(),
		Type:           in.Type,
		Status:         entity.OrderStatusPending,
		Total:          total,
		Notes:          in.Notes,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		Address:        in.Address,
		ExternalNumber: in.ExternalNumber,
		UserID:         userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// 5-6. Número del día y cabecera
	if err := uc.insertNumbered(ctx, o, order.DayStart(now, uc.loc)); err != nil {
		return nil, err
	}

	// 7. Líneas
	for _, it := range items {
		it.OrderID = o.ID
	}
	if err := uc.orders.CreateItems(ctx, items); err != nil {
		uc.compensate(ctx, o, err)
		return nil, &domain.PersistenceError{Op: "crear líneas del pedido", Err: err}
	}

	// 8. Historial inicial
	entry := &entity.OrderHistory{
		ID:        uuid.New().String(),
		OrderID:   o.ID,
		NewStatus: entity.OrderStatusPending,
		UserID:    userID,
		CreatedAt: now,
	}
	if err := uc.orders.CreateHistory(ctx, entry); err != nil {
		uc.compensate(ctx, o, err)
		return nil, &domain.PersistenceError{Op: "crear historial del pedido", Err: err}
	}

	uc.log.Info().Str("pedido_id", o.ID).Str("numero_pedido", o.Number).
		Str("tipo", o.Type).Str("total", o.Total.StringFixed(2)).Msg("pedido creado")
	publish(ctx, uc.notifier, uc.log, Event{Type: EventOrderCreated, OrderID: o.ID, Number: o.Number, Status: o.Status})

	return toOrderResponse(o, items, []*entity.OrderHistory{entry}), nil
}

// insertNumbered pide el siguiente consecutivo del día e inserta; si el número ya existe
// (otra instancia lo tomó) repite con un consecutivo nuevo.
func (uc *CreateOrderUseCase) insertNumbered(ctx context.Context, o *entity.Order, day time.Time) error {
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		seq, err := uc.sequence.Next(ctx, day)
		if err != nil {
			return domain.Persistence("asignar consecutivo del día", err)
		}
		o.Number = order.GenerateNumber(seq, day)

		err = uc.orders.Create(ctx, o)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return domain.Persistence("crear pedido", err)
		}
		uc.log.Warn().Str("numero_pedido", o.Number).Int("intento", attempt).Msg("número de pedido duplicado, reintentando")
	}
	return fmt.Errorf("%w: no se pudo asignar un número de pedido único tras %d intentos", domain.ErrConflict, maxNumberAttempts)
}

// compensate borra el pedido recién creado. Usa un contexto sin cancelación para que el
// borrado ocurra aunque el cliente haya cortado la petición.
func (uc *CreateOrderUseCase) compensate(ctx context.Context, o *entity.Order, cause error) {
	ev := uc.log.Error().Err(cause).Str("pedido_id", o.ID).Str("numero_pedido", o.Number)
	if err := uc.orders.Delete(context.WithoutCancel(ctx), o.ID); err != nil {
		ev.AnErr("compensacion", err).Msg("falló la creación del pedido y no se pudo borrar")
		return
	}
	ev.Msg("falló la creación del pedido; pedido borrado")
}

func validateCreate(userID string, in dto.CreateOrderRequest) error {
	if strings.TrimSpace(userID) == "" {
		return domain.Validation("usuario_id", "requerido")
	}
	if !entity.IsValidOrderType(in.Type) {
		return domain.Validation("tipo", "debe ser uno de: "+strings.Join(entity.OrderTypes, ", "))
	}
	if len(in.Items) == 0 {
		return domain.Validation("items", "el pedido debe tener al menos un producto")
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return domain.Validation(fmt.Sprintf("items[%d].producto_id", i), "requerido")
		}
		if it.Quantity < 1 {
			return domain.Validation(fmt.Sprintf("items[%d].cantidad", i), "debe ser al menos 1")
		}
		if it.Quantity > MaxItemQuantity {
			return domain.Validation(fmt.Sprintf("items[%d].cantidad", i), fmt.Sprintf("máximo %d unidades", MaxItemQuantity))
		}
	}
	return nil
}

func distinctProductIDs(items []dto.CreateOrderItemRequest) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
