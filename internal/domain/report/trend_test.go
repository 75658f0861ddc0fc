package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
	"github.com/jhoicas/kiosk-sales/internal/domain/report"
)

func TestBuildTrendSeries(t *testing.T) {
	trend := []entity.TrendRecord{
		trendRow("B", 2024, 6, 600),
		trendRow("A", 2023, 7, 70),
		trendRow("A", 2024, 6, 60),
		trendRow("A", 2023, 6, 999), // fuera de la ventana de 12 meses
	}
	s := report.BuildTrendSeries(trend, 2024, 6)

	require.Len(t, s.Labels, 12)
	assert.Equal(t, "2023-07", s.Labels[0])
	assert.Equal(t, "2024-06", s.Labels[11])

	require.Len(t, s.Datasets, 2)
	assert.Equal(t, "B", s.Datasets[0].StoreName, "orden de primera aparición")
	assert.True(t, s.Datasets[0].Values[11].Equal(amt(600)))
	assert.True(t, s.Datasets[0].Values[0].Equal(amt(0)))

	a := s.Datasets[1]
	assert.True(t, a.Values[0].Equal(amt(70)))
	assert.True(t, a.Values[11].Equal(amt(60)))
	for i := 1; i < 11; i++ {
		assert.True(t, a.Values[i].Equal(amt(0)))
	}
}

func TestProgressRate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	past := report.ProgressRate(2024, 5, now)
	require.True(t, past.Valid)
	assert.Equal(t, "100.00", past.Decimal.StringFixed(2))

	lastYear := report.ProgressRate(2023, 12, now)
	assert.Equal(t, "100.00", lastYear.Decimal.StringFixed(2))

	current := report.ProgressRate(2024, 6, now)
	require.True(t, current.Valid)
	assert.Equal(t, "50.00", current.Decimal.StringFixed(2)) // 15 / 30

	assert.False(t, report.ProgressRate(2024, 7, now).Valid)
	assert.False(t, report.ProgressRate(2025, 1, now).Valid)
}

func TestEstimateMonthly(t *testing.T) {
	got := report.EstimateMonthly(amt(1000), 10, 30)
	assert.True(t, got.Decimal().Equal(decimal.NewFromInt(3000)))

	assert.True(t, report.EstimateMonthly(amt(1000), 30, 30).Equal(amt(1000)), "mes cerrado no se proyecta")
	assert.True(t, report.EstimateMonthly(amt(1000), 0, 30).Equal(amt(1000)))
	assert.False(t, report.EstimateMonthly(entity.InvalidAmount, 10, 30).Valid())
}
