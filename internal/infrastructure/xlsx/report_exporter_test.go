package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
	"github.com/jhoicas/kiosk-sales/internal/infrastructure/xlsx"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func sampleReport() *dto.DailyReportDTO {
	a := entity.AmountFromInt
	return &dto.DailyReportDTO{
		Year: 2024, Month: 6, Days: []int{1, 2},
		Rows: []dto.PivotRowDTO{
			{Type: dto.RowTypeGrandTotal, DailySalesSum: map[int]entity.Amount{1: a(300), 2: a(50)}, MonthlyTotal: a(350), EstimatedMonthly: a(350)},
			{Type: dto.RowTypeData, StoreName: "A", PhotoDetailType: "ID",
				DailySales:   map[string]entity.Amount{"2024-06-01": a(100)},
				MonthlyTotal: a(100), EstimatedMonthly: a(100),
				ColorIndex: intPtr(0), RowSpan: intPtr(3), IsFirstInGroup: boolPtr(true)},
			{Type: dto.RowTypeData, StoreName: "A", PhotoDetailType: "PROFILE",
				DailySales:   map[string]entity.Amount{"2024-06-01": a(200)},
				MonthlyTotal: a(200), EstimatedMonthly: a(200),
				ColorIndex: intPtr(0), RowSpan: intPtr(3), IsFirstInGroup: boolPtr(false)},
			{Type: dto.RowTypeSubtotal, StoreName: "A", DailySalesSum: map[int]entity.Amount{1: a(300), 2: a(0)}, MonthlyTotal: a(300), EstimatedMonthly: a(300), ColorIndex: intPtr(0)},
			{Type: dto.RowTypeData, StoreName: "B", PhotoDetailType: "ID",
				DailySales:   map[string]entity.Amount{"2024-06-02": entity.InvalidAmount},
				MonthlyTotal: a(50), EstimatedMonthly: a(50),
				ColorIndex: intPtr(1), RowSpan: intPtr(2), IsFirstInGroup: boolPtr(true)},
			{Type: dto.RowTypeSubtotal, StoreName: "B", DailySalesSum: map[int]entity.Amount{1: a(0), 2: a(50)}, MonthlyTotal: a(50), EstimatedMonthly: a(50), ColorIndex: intPtr(1)},
		},
		StoreSummaries: []dto.StoreSummaryDTO{
			{StoreName: "A", MonthlyTotal: a(300), EstimatedMonthly: a(300), MoM: decimal.NewNullDecimal(decimal.NewFromInt(50))},
			{StoreName: "B", MonthlyTotal: a(50), EstimatedMonthly: a(50)},
		},
		SummaryTotal: dto.SummaryTotalDTO{MonthlyTotal: a(350), EstimatedMonthly: a(350)},
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExportDailyReport_Hojas(t *testing.T) {
	data, contentType, err := xlsx.NewReportExporter().ExportDailyReport(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, xlsx.ContentType, contentType)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{"Detalle", "Resumen"}, f.GetSheetList())
}

func TestExportDailyReport_Detalle(t *testing.T) {
	data, _, err := xlsx.NewReportExporter().ExportDailyReport(context.Background(), sampleReport())
	require.NoError(t, err)
	f := openWorkbook(t, data)

	rows, err := f.GetRows("Detalle")
	require.NoError(t, err)
	require.Len(t, rows, 7, "encabezado + 6 filas")

	assert.Equal(t, []string{"Tienda", "Tipo", "1", "2", "Total mensual", "Estimado"}, rows[0])
	assert.Equal(t, "Total", rows[1][0])
	assert.Equal(t, "350", rows[1][4])
	assert.Equal(t, "Subtotal", rows[4][1])
	assert.Equal(t, "300", rows[4][4])

	v, err := f.GetCellValue("Detalle", "D6")
	require.NoError(t, err)
	assert.Equal(t, "N/A", v, "monto no numérico se exporta como texto")

	merged, err := f.GetMergeCells("Detalle")
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "A3", merged[0].GetStartAxis())
	assert.Equal(t, "A5", merged[0].GetEndAxis())
}

func TestExportDailyReport_Resumen(t *testing.T) {
	data, _, err := xlsx.NewReportExporter().ExportDailyReport(context.Background(), sampleReport())
	require.NoError(t, err)
	f := openWorkbook(t, data)

	rows, err := f.GetRows("Resumen")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"A", "300", "300", "50", "-"}, rows[1])
	assert.Equal(t, "-", rows[2][3], "sin base de comparación")
	assert.Equal(t, "Total", rows[3][0])
}

func TestExportDailyReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := xlsx.NewReportExporter().ExportDailyReport(ctx, sampleReport())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportDailyReport_DecimalesSeConservan(t *testing.T) {
	rep := sampleReport()
	rep.Rows[0].MonthlyTotal = entity.ParseAmount("1234567.89")
	rep.Rows[0].EstimatedMonthly = entity.ParseAmount("0.1")

	data, _, err := xlsx.NewReportExporter().ExportDailyReport(context.Background(), rep)
	require.NoError(t, err)
	f := openWorkbook(t, data)

	v, err := f.GetCellValue("Detalle", "E2")
	require.NoError(t, err)
	assert.Equal(t, "1234567.89", v)

	v, err = f.GetCellValue("Detalle", "F2")
	require.NoError(t, err)
	assert.Equal(t, "0.1", v)
}
