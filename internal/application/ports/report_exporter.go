package ports

import (
	"context"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
)

// ReportExporter puerto de salida para descargar el reporte diario como archivo.
// La implementación (xlsx) vive en infraestructura; la aplicación solo conoce el contrato.
type ReportExporter interface {
	// ExportDailyReport serializa el reporte ya calculado. Devuelve el contenido
	// del archivo y su content type.
	ExportDailyReport(ctx context.Context, report *dto.DailyReportDTO) ([]byte, string, error)
}
