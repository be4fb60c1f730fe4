package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/acamargo/almacen-api/internal/application/usecase"
)

// StatisticsHandler maneja el tablero y los reportes (protegido).
type StatisticsHandler struct {
	uc *usecase.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *usecase.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Agregados de cabecera del tablero
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/statistics/dashboard [get]
func (h *StatisticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Trend godoc
// @Summary      Unidades aprobadas por día (entradas vs salidas)
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (1-90)"  default(30)
// @Success      200  {array}  dto.TrendPointResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics/trend [get]
func (h *StatisticsHandler) Trend(c *fiber.Ctx) error {
	out, err := h.uc.Trend(c.Context(), c.QueryInt("days"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CategoryDistribution godoc
// @Summary      Distribución de existencias por categoría raíz
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryShareResponse
// @Router       /api/statistics/category-distribution [get]
func (h *StatisticsHandler) CategoryDistribution(c *fiber.Ctx) error {
	out, err := h.uc.CategoryDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Reporte PDF del inventario actual
// @Tags         statistics
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/statistics/inventory/pdf [get]
func (h *StatisticsHandler) InventoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.InventoryPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "inventario.pdf"))
	return c.Send(pdfBytes)
}
