package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/application/inventory"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP de existencias y movimientos (protegido).
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
	log    *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, log: log}
}

// List godoc
// @Summary      Listar insumos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        alerta_stock  query  bool  false  "Solo insumos en o bajo el mínimo"
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.ledger.ListItems(c.Context(), c.QueryBool("alerta_stock", false))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de stock bajo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventario/alertas [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.ledger.Alerts(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"total":   len(alerts),
		"alertas": alerts,
	})
}

// GetByID godoc
// @Summary      Obtener insumo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del insumo"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ledger.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos de un insumo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del insumo"
// @Param        limit  query  int     false  "Máximo de movimientos"  default(50)
// @Success      200    {array}  dto.MovementResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/movimientos [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	out, err := h.ledger.Movements(c.Context(), c.Params("id"), c.QueryInt("limit", inventory.DefaultMovementsLimit))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar entrada o salida
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del insumo"
// @Param        body  body  dto.RegisterMovementRequest  true  "tipo_movimiento, cantidad, observaciones"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.ledger.RecordFromRequest(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
