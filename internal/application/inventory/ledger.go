// Package inventory contiene el ledger de insumos: entradas, salidas, alertas de stock e historial.
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/inventory"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

// Límites del historial de movimientos.
const (
	DefaultMovementsLimit = 50
	MaxMovementsLimit     = 200
)

// LedgerUseCase registra movimientos de inventario de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y actualización condicionada a la cantidad leída.
type LedgerUseCase struct {
	txRunner  TxRunner
	items     repository.InventoryRepository
	movements repository.InventoryMovementRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewLedgerUseCase construye el caso de uso. items y movements se usan para las lecturas fuera de tx.
func NewLedgerUseCase(
	txRunner TxRunner,
	items repository.InventoryRepository,
	movements repository.InventoryMovementRepository,
	log *logger.Logger,
) *LedgerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LedgerUseCase{
		txRunner:  txRunner,
		items:     items,
		movements: movements,
		log:       log,
		now:       time.Now,
	}
}

// RecordInbound suma qty a la existencia del insumo.
func (uc *LedgerUseCase) RecordInbound(ctx context.Context, itemID string, qty decimal.Decimal, userID, notes string) (*dto.MovementResponse, error) {
	return uc.record(ctx, itemID, entity.MovementTypeInbound, qty, userID, notes)
}

// RecordOutbound resta qty; si supera la existencia devuelve InsufficientStock sin modificar nada.
func (uc *LedgerUseCase) RecordOutbound(ctx context.Context, itemID string, qty decimal.Decimal, userID, notes string) (*dto.MovementResponse, error) {
	return uc.record(ctx, itemID, entity.MovementTypeOutbound, qty, userID, notes)
}

// RecordFromRequest adapta el body HTTP a RecordInbound/RecordOutbound.
func (uc *LedgerUseCase) RecordFromRequest(ctx context.Context, itemID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	switch in.Type {
	case entity.MovementTypeInbound, entity.MovementTypeOutbound:
		return uc.record(ctx, itemID, in.Type, in.Quantity, userID, in.Notes)
	default:
		return nil, domain.Validation("tipo_movimiento", "debe ser entrada o salida")
	}
}

func (uc *LedgerUseCase) record(ctx context.Context, itemID, movementType string, qty decimal.Decimal, userID, notes string) (*dto.MovementResponse, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, domain.Validation("id", "requerido")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, domain.Validation("usuario_id", "requerido")
	}
	if err := inventory.ValidateQuantity(qty); err != nil {
		return nil, err
	}

	var mov *entity.InventoryMovement
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryRepository, movRepo repository.InventoryMovementRepository) error {
		// Bloquea la fila del insumo para serializar movimientos concurrentes
		item, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return domain.Persistence("bloquear insumo", err)
		}
		if item == nil {
			return domain.ErrNotFound
		}
		after, err := inventory.Apply(item.ID, item.Quantity, movementType, qty)
		if err != nil {
			return err
		}

		now := uc.now()
		if err := itemRepo.UpdateQuantity(ctx, item.ID, item.Quantity, after, now); err != nil {
			return domain.Persistence("actualizar cantidad", err)
		}
		mov = &entity.InventoryMovement{
			ID:              uuid.New().String(),
			InventoryItemID: item.ID,
			Type:            movementType,
			Quantity:        qty,
			QuantityBefore:  item.Quantity,
			QuantityAfter:   after,
			Notes:           notes,
			UserID:          userID,
			CreatedAt:       now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return domain.Persistence("registrar movimiento", err)
		}
		if after.LessThanOrEqual(item.MinimumStock) {
			uc.log.Warn().Str("inventario_id", item.ID).Str("nombre", item.Name).
				Str("cantidad_actual", after.String()).Str("stock_minimo", item.MinimumStock.String()).
				Msg("insumo en stock mínimo")
		}
		return nil
	})
	if err != nil {
		return nil, domain.Persistence("transacción de inventario", err)
	}
	return toMovementResponse(mov), nil
}

// ListLowStock insumos con cantidad_actual <= stock_minimo, de menor a mayor cantidad.
func (uc *LedgerUseCase) ListLowStock(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.items.ListLowStock(ctx)
	if err != nil {
		return nil, domain.Persistence("listar stock bajo", err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Alerts igual que ListLowStock con el faltante para volver al mínimo.
func (uc *LedgerUseCase) Alerts(ctx context.Context) ([]dto.StockAlertResponse, error) {
	items, err := uc.items.ListLowStock(ctx)
	if err != nil {
		return nil, domain.Persistence("listar alertas", err)
	}
	out := make([]dto.StockAlertResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockAlertResponse{
			InventoryItemResponse: toItemResponse(it),
			Shortfall:             inventory.Shortfall(it.Quantity, it.MinimumStock),
		})
	}
	return out, nil
}

// ListItems insumos por nombre; onlyAlerts filtra los que están en o bajo el mínimo.
func (uc *LedgerUseCase) ListItems(ctx context.Context, onlyAlerts bool) ([]dto.InventoryItemResponse, error) {
	items, err := uc.items.List(ctx, onlyAlerts)
	if err != nil {
		return nil, domain.Persistence("listar inventario", err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// GetItem insumo por id.
func (uc *LedgerUseCase) GetItem(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener insumo", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Movements historial del insumo, más reciente primero. limit <= 0 usa el valor por defecto.
func (uc *LedgerUseCase) Movements(ctx context.Context, itemID string, limit int) ([]dto.MovementResponse, error) {
	if _, err := uc.GetItem(ctx, itemID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultMovementsLimit
	case limit > MaxMovementsLimit:
		limit = MaxMovementsLimit
	}
	movs, err := uc.movements.ListByItem(ctx, itemID, limit)
	if err != nil {
		return nil, domain.Persistence("listar movimientos", err)
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		UnitMeasure:  it.UnitMeasure,
		Quantity:     it.Quantity,
		MinimumStock: it.MinimumStock,
		LowStock:     it.IsLowStock(),
		UpdatedAt:    it.UpdatedAt,
	}
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:              m.ID,
		InventoryItemID: m.InventoryItemID,
		Type:            m.Type,
		Quantity:        m.Quantity,
		QuantityBefore:  m.QuantityBefore,
		QuantityAfter:   m.QuantityAfter,
		Notes:           m.Notes,
		UserID:          m.UserID,
		UserName:        m.UserName,
		CreatedAt:       m.CreatedAt,
	}
}
