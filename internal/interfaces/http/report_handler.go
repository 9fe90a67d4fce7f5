package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-api/internal/application/report"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

// ReportHandler reportes de ventas (solo admin).
type ReportHandler struct {
	uc  *report.SalesReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.SalesReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Daily godoc
// @Summary      Ventas del día
// @Description  Métricas, desglose por origen y categoría, top 10, ventas por hora y comparación con el día anterior.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha  query  string  false  "YYYY-MM-DD; vacío = hoy"
// @Success      200    {object}  dto.DailySalesReport
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas-diarias [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.Daily(c.Context(), c.Query("fecha"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// Period godoc
// @Summary      Ventas de un periodo (inclusive)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  true  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.PeriodSalesReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas-periodo [get]
func (h *ReportHandler) Period(c *fiber.Ctx) error {
	out, err := h.uc.Period(c.Context(), c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(out)
}

// DailyPDF godoc
// @Summary      Ventas del día en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        fecha  query  string  false  "YYYY-MM-DD; vacío = hoy"
// @Success      200    {file}    binary
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas-diarias/pdf [get]
func (h *ReportHandler) DailyPDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.DailyPDF(c.Context(), c.Query("fecha"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
