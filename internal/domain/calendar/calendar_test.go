package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
)

func TestDaysInMonth(t *testing.T) {
	assert.Len(t, calendar.DaysInMonth(2024, 2), 29, "2024 es bisiesto")
	assert.Len(t, calendar.DaysInMonth(2023, 2), 28)
	assert.Len(t, calendar.DaysInMonth(1900, 2), 28, "1900 no es bisiesto")
	assert.Len(t, calendar.DaysInMonth(2024, 4), 30)
	assert.Len(t, calendar.DaysInMonth(2024, 12), 31)

	days := calendar.DaysInMonth(2024, 6)
	assert.Equal(t, 1, days[0])
	assert.Equal(t, 30, days[len(days)-1])
}

func TestPrevMonthLabel_CambioDeAnio(t *testing.T) {
	assert.Equal(t, "2023-12", calendar.PrevMonthLabel(2024, 1))
	assert.Equal(t, "2024-05", calendar.PrevMonthLabel(2024, 6))
	assert.Equal(t, "2023-06", calendar.PrevYearLabel(2024, 6))
}

func TestLastNMonths(t *testing.T) {
	labels := calendar.LastNMonths(2024, 3, 12)
	assert.Len(t, labels, 12)
	assert.Equal(t, "2023-04", labels[0])
	assert.Equal(t, "2024-03", labels[11])
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-06-05", calendar.DateKey(2024, 6, 5))
}

func TestPresetRange(t *testing.T) {
	// miércoles 12 de junio de 2024
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	start, end, ok := calendar.PresetRange(calendar.PresetThisWeek, now)
	assert.True(t, ok)
	assert.Equal(t, day(2024, 6, 10), start)
	assert.Equal(t, day(2024, 6, 12), end)

	start, end, _ = calendar.PresetRange(calendar.PresetLastWeek, now)
	assert.Equal(t, day(2024, 6, 3), start)
	assert.Equal(t, day(2024, 6, 9), end)

	start, end, _ = calendar.PresetRange(calendar.PresetLastMonth, now)
	assert.Equal(t, day(2024, 5, 1), start)
	assert.Equal(t, day(2024, 5, 31), end)

	// domingo: la semana actual empieza el lunes anterior
	start, _, _ = calendar.PresetRange(calendar.PresetThisWeek, day(2024, 6, 16))
	assert.Equal(t, day(2024, 6, 10), start)

	_, _, ok = calendar.PresetRange("yesterday", now)
	assert.False(t, ok)
}

func TestElapsedDays(t *testing.T) {
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 31, calendar.ElapsedDays(2024, 5, now))
	assert.Equal(t, 29, calendar.ElapsedDays(2024, 2, now))
	assert.Equal(t, 12, calendar.ElapsedDays(2024, 6, now))
	assert.Equal(t, 0, calendar.ElapsedDays(2024, 7, now))
}
