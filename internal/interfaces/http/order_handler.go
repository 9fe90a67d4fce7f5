package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/application/order"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

// OrderHandler maneja las peticiones HTTP de pedidos (protegido).
type OrderHandler struct {
	create *order.CreateOrderUseCase
	status *order.StatusUseCase
	query  *order.QueryUseCase
	log    *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(create *order.CreateOrderUseCase, status *order.StatusUseCase, query *order.QueryUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{create: create, status: status, query: query, log: log}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Numera el pedido (DDMMYY-NNN), congela precios del catálogo y registra el estado inicial.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "tipo e items"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.create.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Estado"
// @Param        tipo    query  string  false  "Origen"
// @Param        fecha   query  string  false  "Día YYYY-MM-DD (zona del local)"
// @Success      200     {array}   dto.OrderResponse
// @Router       /api/pedidos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var in dto.OrderFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.query.List(c.Context(), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// Active godoc
// @Summary      Tablero de pedidos activos
// @Description  Pendientes y en preparación, los más antiguos primero, con minutos de espera y color.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ActiveOrderResponse
// @Router       /api/pedidos/activos [get]
func (h *OrderHandler) Active(c *fiber.Ctx) error {
	out, err := h.query.ActiveBoard(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido con items e historial
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/estado [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.status.UpdateStatus(c.Context(), c.Params("id"), in.Status, GetUserID(c))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}
