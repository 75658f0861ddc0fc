// Package xlsx exporta el reporte diario a un libro de Excel con excelize.
package xlsx

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/internal/application/ports"
	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

var _ ports.ReportExporter = (*ReportExporter)(nil)

// ContentType tipo MIME de los archivos generados.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetDetail  = "Detalle"
	sheetSummary = "Resumen"
	emptyValue   = "-"
	invalidValue = "N/A"
)

// Colores de banda por colorIndex.
var bandColors = [2]string{"#FFFFFF", "#F1F5F9"}

// ReportExporter implementa ports.ReportExporter.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

type styles struct {
	header   int
	total    int
	subtotal int
	band     [2]int
}

// ExportDailyReport genera el libro con la hoja "Detalle" (tabla pivote) y la
// hoja "Resumen" (comparación por tienda más la fila de totales).
func (e *ReportExporter) ExportDailyReport(ctx context.Context, report *dto.DailyReportDTO) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetDetail); err != nil {
		return nil, "", fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, "", fmt.Errorf("xlsx: crear hoja resumen: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, "", err
	}
	if err := writeDetail(f, st, report); err != nil {
		return nil, "", err
	}
	if err := writeSummary(f, st, report); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), ContentType, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	st.total, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FDE68A"}, Pattern: 1},
	})
	if err != nil {
		return st, fmt.Errorf("xlsx: estilo total: %w", err)
	}
	st.subtotal, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0F2FE"}, Pattern: 1},
	})
	if err != nil {
		return st, fmt.Errorf("xlsx: estilo subtotal: %w", err)
	}
	for i, color := range bandColors {
		st.band[i], err = f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Vertical: "center"},
		})
		if err != nil {
			return st, fmt.Errorf("xlsx: estilo banda: %w", err)
		}
	}
	return st, nil
}

// writeDetail columnas: Tienda, Tipo, un día por columna, Total mensual, Estimado.
func writeDetail(f *excelize.File, st styles, report *dto.DailyReportDTO) error {
	header := []interface{}{"Tienda", "Tipo"}
	for _, d := range report.Days {
		header = append(header, strconv.Itoa(d))
	}
	header = append(header, "Total mensual", "Estimado")
	if err := f.SetSheetRow(sheetDetail, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado detalle: %w", err)
	}
	lastCol := len(header)
	if err := styleRow(f, sheetDetail, 1, lastCol, st.header); err != nil {
		return err
	}

	for i, r := range report.Rows {
		rowNum := i + 2
		values := make([]interface{}, 0, lastCol)
		style := st.band[0]

		switch r.Type {
		case dto.RowTypeGrandTotal:
			values = append(values, "Total", "")
			values = appendDays(values, report.Days, func(d int) entity.Amount { return r.DailySalesSum[d] })
			style = st.total
		case dto.RowTypeSubtotal:
			values = append(values, r.StoreName, "Subtotal")
			values = appendDays(values, report.Days, func(d int) entity.Amount { return r.DailySalesSum[d] })
			style = st.subtotal
		default:
			values = append(values, r.StoreName, r.PhotoDetailType)
			values = appendDays(values, report.Days, func(d int) entity.Amount {
				return r.DailySales[calendar.DateKey(report.Year, report.Month, d)]
			})
			if r.ColorIndex != nil {
				style = st.band[*r.ColorIndex%2]
			}
		}
		values = append(values, amountCell(r.MonthlyTotal), amountCell(r.EstimatedMonthly))

		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheetDetail, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", rowNum, err)
		}
		if err := styleRow(f, sheetDetail, rowNum, lastCol, style); err != nil {
			return err
		}

		// La celda de tienda se combina sobre sus filas de datos y el subtotal.
		if r.Type == dto.RowTypeData && r.IsFirstInGroup != nil && *r.IsFirstInGroup && r.RowSpan != nil && *r.RowSpan > 1 {
			top, _ := excelize.CoordinatesToCellName(1, rowNum)
			bottom, _ := excelize.CoordinatesToCellName(1, rowNum+*r.RowSpan-1)
			if err := f.MergeCell(sheetDetail, top, bottom); err != nil {
				return fmt.Errorf("xlsx: combinar %s:%s: %w", top, bottom, err)
			}
		}
	}

	lastName, _ := excelize.ColumnNumberToName(lastCol)
	if err := f.SetColWidth(sheetDetail, "A", "B", 18); err != nil {
		return fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}
	if err := f.SetColWidth(sheetDetail, "C", lastName, 11); err != nil {
		return fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}
	return f.SetPanes(sheetDetail, &excelize.Panes{
		Freeze: true, XSplit: 2, YSplit: 1, TopLeftCell: "C2", ActivePane: "bottomRight",
	})
}

// writeSummary tabla de comparación por tienda más la fila de totales.
func writeSummary(f *excelize.File, st styles, report *dto.DailyReportDTO) error {
	header := []interface{}{"Tienda", "Total mensual", "Estimado", "MoM %", "YoY %"}
	if err := f.SetSheetRow(sheetSummary, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado resumen: %w", err)
	}
	if err := styleRow(f, sheetSummary, 1, len(header), st.header); err != nil {
		return err
	}

	for i, s := range report.StoreSummaries {
		values := []interface{}{
			s.StoreName, amountCell(s.MonthlyTotal), amountCell(s.EstimatedMonthly),
			percentCell(s.MoM), percentCell(s.YoY),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetSummary, cell, &values); err != nil {
			return fmt.Errorf("xlsx: resumen %s: %w", s.StoreName, err)
		}
	}

	t := report.SummaryTotal
	totalRow := len(report.StoreSummaries) + 2
	values := []interface{}{
		"Total", amountCell(t.MonthlyTotal), amountCell(t.EstimatedMonthly),
		percentCell(t.MoM), percentCell(t.YoY),
	}
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	if err := f.SetSheetRow(sheetSummary, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila total resumen: %w", err)
	}
	if err := styleRow(f, sheetSummary, totalRow, len(header), st.total); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "A", "E", 16)
}

func appendDays(values []interface{}, days []int, get func(int) entity.Amount) []interface{} {
	for _, d := range days {
		values = append(values, amountCell(get(d)))
	}
	return values
}

func styleRow(f *excelize.File, sheet string, row, lastCol, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(lastCol, row)
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("xlsx: estilo fila %d: %w", row, err)
	}
	return nil
}

// amountCell número para Excel (float64, precisión de 15 dígitos); un monto no
// numérico se escribe como texto.
func amountCell(a entity.Amount) interface{} {
	if !a.Valid() {
		return invalidValue
	}
	return a.Decimal().InexactFloat64()
}

func percentCell(p decimal.NullDecimal) interface{} {
	if !p.Valid {
		return emptyValue
	}
	return p.Decimal.Round(1).InexactFloat64()
}
