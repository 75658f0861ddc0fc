package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/kiosk-sales/internal/application/analytics"
	"github.com/jhoicas/kiosk-sales/internal/application/dto"
)

// SalesHandler maneja el resumen de ventas del día y del período.
type SalesHandler struct {
	uc *appanalytics.SalesSummaryUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *appanalytics.SalesSummaryUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// GetToday godoc
// @Summary      Ventas de hoy
// @Description  Total vendido, número de pedidos y composición por tipo de foto del día actual.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        store_name  query  string  false  "Tienda. Default: la primera configurada."
// @Success      200  {object}  dto.TodaySummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sales/today [get]
func (h *SalesHandler) GetToday(c *fiber.Ctx) error {
	store, err := resolveStore(c, c.Query("store_name"))
	if err != nil {
		return writeError(c, err)
	}
	summary, err := h.uc.GetToday(c.UserContext(), store)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetPeriod godoc
// @Summary      Ventas por día de un período
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        store_name  query  string  false  "Tienda. Default: la primera configurada."
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD). Default: hoy."
// @Param        preset      query  string  false  "this_week | last_week | this_month | last_month"
// @Success      200  {object}  dto.PeriodSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sales/period [get]
func (h *SalesHandler) GetPeriod(c *fiber.Ctx) error {
	var req dto.PeriodRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	store, err := resolveStore(c, req.StoreName)
	if err != nil {
		return writeError(c, err)
	}
	req.StoreName = store

	summary, err := h.uc.GetPeriod(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// ListStores godoc
// @Summary      Tiendas disponibles
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreListDTO
// @Router       /api/stores [get]
func (h *SalesHandler) ListStores(c *fiber.Ctx) error {
	list := h.uc.Stores()
	if allowed := GetStores(c); len(allowed) > 0 {
		list.Stores = allowed
	}
	return c.JSON(list)
}
