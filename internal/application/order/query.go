package order

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/order"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// DateLayout formato de fecha de los filtros (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// QueryUseCase consultas de pedidos: listado con filtros, detalle y tablero de activos.
type QueryUseCase struct {
	orders repository.OrderRepository
	loc    *time.Location
	now    func() time.Time
}

// NewQueryUseCase construye el caso de uso. loc interpreta el filtro por fecha.
func NewQueryUseCase(orders repository.OrderRepository, loc *time.Location) *QueryUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &QueryUseCase{orders: orders, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *QueryUseCase) WithClock(now func() time.Time) *QueryUseCase {
	uc.now = now
	return uc
}

// List pedidos más recientes primero con sus líneas.
func (uc *QueryUseCase) List(ctx context.Context, in dto.OrderFilterRequest) ([]dto.OrderResponse, error) {
	filter := repository.OrderFilter{}
	if in.Status != "" {
		if !entity.IsValidOrderStatus(in.Status) {
			return nil, domain.Validation("estado", "estado desconocido")
		}
		filter.Status = in.Status
	}
	if in.Type != "" {
		if !entity.IsValidOrderType(in.Type) {
			return nil, domain.Validation("tipo", "tipo desconocido")
		}
		filter.Type = in.Type
	}
	if d := strings.TrimSpace(in.Date); d != "" {
		day, err := time.ParseInLocation(DateLayout, d, uc.loc)
		if err != nil {
			return nil, domain.Validation("fecha", "formato esperado YYYY-MM-DD")
		}
		next := day.AddDate(0, 0, 1)
		filter.From, filter.To = &day, &next
	}

	orders, err := uc.orders.List(ctx, filter)
	if err != nil {
		return nil, domain.Persistence("listar pedidos", err)
	}
	return uc.withItems(ctx, orders)
}

// Get pedido con líneas e historial.
func (uc *QueryUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener pedido", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orders.ListItems(ctx, o.ID)
	if err != nil {
		return nil, domain.Persistence("obtener líneas", err)
	}
	history, err := uc.orders.ListHistory(ctx, o.ID)
	if err != nil {
		return nil, domain.Persistence("obtener historial", err)
	}
	return toOrderResponse(o, items, history), nil
}

// ActiveBoard pedidos pendientes o en preparación, el más antiguo primero, con su tiempo de espera.
func (uc *QueryUseCase) ActiveBoard(ctx context.Context) ([]dto.ActiveOrderResponse, error) {
	orders, err := uc.orders.List(ctx, repository.OrderFilter{
		Statuses:  entity.ActiveStatuses,
		Ascending: true,
	})
	if err != nil {
		return nil, domain.Persistence("listar pedidos activos", err)
	}
	list, err := uc.withItems(ctx, orders)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	board := make([]dto.ActiveOrderResponse, 0, len(list))
	for _, o := range list {
		minutes := order.WaitingMinutes(o.CreatedAt, now)
		board = append(board, dto.ActiveOrderResponse{
			OrderResponse:  o,
			WaitingMinutes: minutes,
			Color:          order.WaitColor(minutes),
		})
	}
	return board, nil
}

func (uc *QueryUseCase) withItems(ctx context.Context, orders []*entity.Order) ([]dto.OrderResponse, error) {
	out := make([]dto.OrderResponse, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := uc.orders.ListItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, domain.Persistence("obtener líneas", err)
	}
	for _, o := range orders {
		out = append(out, *toOrderResponse(o, items[o.ID], nil))
	}
	return out, nil
}
