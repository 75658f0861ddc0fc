package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
	"github.com/jhoicas/kiosk-sales/internal/domain/report"
)

func trendRow(store string, year, month int, total int64) entity.TrendRecord {
	return entity.TrendRecord{StoreName: store, SalesYear: year, SalesMonth: month, TotalSales: amt(total)}
}

func assertPct(t *testing.T, want string, got decimal.NullDecimal) {
	t.Helper()
	require.True(t, got.Valid, "se esperaba un porcentaje, no null")
	assert.True(t, decimal.RequireFromString(want).Equal(got.Decimal), "esperado %s, obtenido %s", want, got.Decimal)
}

func TestBuildStoreSummary_MoM(t *testing.T) {
	records := []entity.SalesRecord{record("A", "ID", 1000, 1500, nil)}
	trend := []entity.TrendRecord{trendRow("A", 2024, 5, 1000)}

	out := report.BuildStoreSummary(records, trend, 2024, 6)
	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].StoreName)
	assertPct(t, "50", out[0].MoM)
	assert.False(t, out[0].YoY.Valid, "sin dato del año anterior YoY es null")
}

func TestBuildStoreSummary_MoMConBase1000(t *testing.T) {
	records := []entity.SalesRecord{record("A", "ID", 900, 1200, nil)}
	trend := []entity.TrendRecord{trendRow("A", 2024, 5, 1000), trendRow("A", 2023, 6, 800)}

	out := report.BuildStoreSummary(records, trend, 2024, 6)
	assertPct(t, "20", out[0].MoM)
	assertPct(t, "50", out[0].YoY)
}

func TestBuildStoreSummary_BaseCeroEsNull(t *testing.T) {
	records := []entity.SalesRecord{record("A", "ID", 100, 99999, nil)}
	trend := []entity.TrendRecord{trendRow("A", 2024, 5, 0), trendRow("A", 2023, 6, -10)}

	out := report.BuildStoreSummary(records, trend, 2024, 6)
	assert.False(t, out[0].MoM.Valid, "base 0 no divide")
	assert.False(t, out[0].YoY.Valid, "base negativa no divide")
}

func TestBuildStoreSummary_EneroUsaDiciembreAnterior(t *testing.T) {
	records := []entity.SalesRecord{record("A", "ID", 100, 300, nil)}
	trend := []entity.TrendRecord{trendRow("A", 2023, 12, 200), trendRow("A", 2024, 12, 1)}

	out := report.BuildStoreSummary(records, trend, 2024, 1)
	assertPct(t, "50", out[0].MoM)
}

func TestBuildStoreSummary_AgregaPorTiendaEnOrdenDeAparicion(t *testing.T) {
	records := []entity.SalesRecord{
		record("B", "ID", 10, 20, nil),
		record("A", "ID", 1, 2, nil),
		record("B", "PROFILE", 5, 6, nil),
	}
	out := report.BuildStoreSummary(records, nil, 2024, 6)
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].StoreName)
	assert.True(t, out[0].MonthlyTotal.Equal(amt(15)))
	assert.True(t, out[0].EstimatedMonthly.Equal(amt(26)))
	assert.Equal(t, "A", out[1].StoreName)
	assert.False(t, out[1].MoM.Valid)
}

func TestBuildStoreSummary_Vacio(t *testing.T) {
	out := report.BuildStoreSummary(nil, nil, 2024, 6)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBuildStoreSummary_EstimadoInvalidoDaNull(t *testing.T) {
	rec := record("A", "ID", 1, 0, nil)
	rec.EstimatedMonthly = entity.InvalidAmount
	out := report.BuildStoreSummary([]entity.SalesRecord{rec}, []entity.TrendRecord{trendRow("A", 2024, 5, 100)}, 2024, 6)
	assert.False(t, out[0].MoM.Valid)
}

// El total usa la suma de los valores previos, no el promedio de porcentajes.
func TestBuildSummaryTotal_SumaDeBases(t *testing.T) {
	records := []entity.SalesRecord{
		record("A", "ID", 1000, 1500, nil), // A: prev 1000 → +50%
		record("B", "ID", 100, 100, nil),   // B: prev 300  → -66.67%
	}
	trend := []entity.TrendRecord{
		trendRow("A", 2024, 5, 1000),
		trendRow("B", 2024, 5, 300),
		trendRow("C", 2024, 5, 5000), // tienda sin ventas este mes: no entra al total
	}
	summaries := report.BuildStoreSummary(records, trend, 2024, 6)
	total := report.BuildSummaryTotal(summaries, trend, 2024, 6)

	assert.True(t, total.MonthlyTotal.Equal(amt(1100)))
	assert.True(t, total.EstimatedMonthly.Equal(amt(1600)))
	assert.True(t, total.PrevMonthSales.Equal(amt(1300)))
	// (1600 - 1300) / 1300 * 100
	want := decimal.NewFromInt(300).Div(decimal.NewFromInt(1300)).Mul(decimal.NewFromInt(100))
	require.True(t, total.MoM.Valid)
	assert.True(t, want.Equal(total.MoM.Decimal))
	assert.False(t, total.YoY.Valid)
}

func TestPercentChange(t *testing.T) {
	assertPct(t, "20", report.PercentChange(amt(1200), amt(1000)))
	assertPct(t, "-50", report.PercentChange(amt(500), amt(1000)))
	assert.False(t, report.PercentChange(amt(1200), amt(0)).Valid)
	assert.False(t, report.PercentChange(amt(1200), entity.InvalidAmount).Valid)
}
