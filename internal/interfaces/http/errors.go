package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/order"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

var statusByKind = map[string]int{
	domain.KindValidation:          fiber.StatusBadRequest,
	domain.KindNotFound:            fiber.StatusNotFound,
	domain.KindProductsNotFound:    fiber.StatusNotFound,
	domain.KindInvalidTransition:   fiber.StatusUnprocessableEntity,
	domain.KindProductsUnavailable: fiber.StatusUnprocessableEntity,
	domain.KindInsufficientStock:   fiber.StatusConflict,
	domain.KindConflict:            fiber.StatusConflict,
	domain.KindUnauthorized:        fiber.StatusUnauthorized,
	domain.KindForbidden:           fiber.StatusForbidden,
}

// handleError traduce un error de dominio a la respuesta JSON.
// Persistencia e internos responden 500 con mensaje genérico; la causa solo va al log.
func handleError(c *fiber.Ctx, log *logger.Logger, err error) error {
	kind := domain.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		log.Error().Err(err).
			Str("kind", kind).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    kind,
			Message: "error interno, intente más tarde",
		})
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:    kind,
		Message: err.Error(),
		Details: errorDetails(err),
	})
}

func errorDetails(err error) map[string]any {
	var (
		verr  *domain.ValidationError
		trans *domain.InvalidTransitionError
		unav  *domain.ProductsUnavailableError
		nf    *domain.ProductsNotFoundError
		stock *domain.InsufficientStockError
	)
	switch {
	case errors.As(err, &verr):
		if verr.Field == "" {
			return nil
		}
		return map[string]any{"campo": verr.Field}
	case errors.As(err, &trans):
		return map[string]any{
			"estado_actual":     trans.Current,
			"estado_solicitado": trans.Requested,
			"permitidos":        order.NextStatuses(trans.Current),
		}
	case errors.As(err, &unav):
		return map[string]any{"productos": unav.Products}
	case errors.As(err, &nf):
		return map[string]any{"producto_ids": nf.IDs}
	case errors.As(err, &stock):
		return map[string]any{"disponible": stock.Available, "solicitado": stock.Requested}
	}
	return nil
}
