package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/kiosk-sales/internal/application/analytics"
	"github.com/jhoicas/kiosk-sales/internal/application/dto"
)

// ReportHandler maneja los endpoints del reporte diario.
type ReportHandler struct {
	uc  *appanalytics.DailyReportUseCase
	now func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.DailyReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, now: time.Now}
}

// parseRequest lee year/month/store_name; year y month vacíos = mes en curso.
func (h *ReportHandler) parseRequest(c *fiber.Ctx) (dto.DailyReportRequest, error) {
	var req dto.DailyReportRequest
	if err := c.QueryParser(&req); err != nil {
		return req, err
	}
	now := h.now()
	if req.Year == 0 && c.Query("year") == "" {
		req.Year = now.Year()
	}
	if req.Month == 0 && c.Query("month") == "" {
		req.Month = int(now.Month())
	}
	store, err := resolveStore(c, req.StoreName)
	if err != nil {
		return req, err
	}
	req.StoreName = store
	return req, nil
}

// GetDaily godoc
// @Summary      Reporte diario de ventas del mes
// @Description  Tabla pivote (total general, filas por tienda/tipo y subtotales), comparación
//               MoM/YoY por tienda, fila de totales y tendencia de 12 meses.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year        query  int     false  "Año (2000-2100). Default: año actual."
// @Param        month       query  int     false  "Mes (1-12). Default: mes actual."
// @Param        store_name  query  string  false  "Filtrar por tienda."
// @Success      200  {object}  dto.DailyReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) GetDaily(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return h.badParams(c, err)
	}
	report, err := h.uc.GetDailyReport(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ExportDaily godoc
// @Summary      Descargar el reporte diario como Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        year        query  int     false  "Año (2000-2100). Default: año actual."
// @Param        month       query  int     false  "Mes (1-12). Default: mes actual."
// @Param        store_name  query  string  false  "Filtrar por tienda."
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/daily/export [get]
func (h *ReportHandler) ExportDaily(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return h.badParams(c, err)
	}
	data, contentType, err := h.uc.ExportDailyReport(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(fmt.Sprintf("ventas-%d-%02d.xlsx", req.Year, req.Month))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// badParams 403 si el error viene del alcance del token, 400 si no.
func (h *ReportHandler) badParams(c *fiber.Ctx, err error) error {
	if isDomainError(err) {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}
