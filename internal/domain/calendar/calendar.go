// Package calendar reúne las reglas de calendario que el llamador aplica antes
// de invocar el motor de reportes (lista de días del mes, etiquetas de mes,
// rangos predefinidos).
package calendar

import (
	"fmt"
	"time"
)

// DateLayout formato de fecha usado por la fuente de ventas.
const DateLayout = "2006-01-02"

// DaysInMonth devuelve [1..N] con N = días del mes (considera años bisiestos).
func DaysInMonth(year, month int) []int {
	n := daysIn(year, month)
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

func daysIn(year, month int) int {
	// Día 0 del mes siguiente = último día del mes pedido.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths desplaza (year, month) delta meses, normalizando el año.
func AddMonths(year, month, delta int) (int, int) {
	t := time.Date(year, time.Month(month)+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month())
}

// MonthLabel etiqueta "YYYY-MM".
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// DateKey clave "YYYY-MM-DD" de un día del mes.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

// PrevMonthLabel etiqueta del mes anterior; enero retrocede a diciembre del año previo.
func PrevMonthLabel(year, month int) string {
	return MonthLabel(AddMonths(year, month, -1))
}

// PrevYearLabel etiqueta del mismo mes del año anterior.
func PrevYearLabel(year, month int) string {
	return MonthLabel(year-1, month)
}

// LastNMonths devuelve n etiquetas ascendentes que terminan en (year, month).
func LastNMonths(year, month, n int) []string {
	labels := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		labels = append(labels, MonthLabel(AddMonths(year, month, -i)))
	}
	return labels
}

// StartOfDay trunca t a las 00:00 en su zona horaria.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FirstOfMonth primer día del mes de t a las 00:00.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Rangos predefinidos del selector de período.
const (
	PresetThisWeek  = "this_week"
	PresetLastWeek  = "last_week"
	PresetThisMonth = "this_month"
	PresetLastMonth = "last_month"
)

// PresetRange resuelve un rango predefinido relativo a now. Las semanas empiezan
// en lunes; "last_week" termina el domingo anterior. ok=false si el nombre no existe.
func PresetRange(preset string, now time.Time) (start, end time.Time, ok bool) {
	today := StartOfDay(now)
	weekday := int(today.Weekday()) // domingo = 0
	switch preset {
	case PresetThisWeek:
		offset := weekday - 1
		if weekday == 0 {
			offset = 6
		}
		return today.AddDate(0, 0, -offset), today, true
	case PresetLastWeek:
		end = today.AddDate(0, 0, -weekday)
		return end.AddDate(0, 0, -6), end, true
	case PresetThisMonth:
		return FirstOfMonth(today), today, true
	case PresetLastMonth:
		first := FirstOfMonth(today)
		return first.AddDate(0, -1, 0), first.AddDate(0, 0, -1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// ElapsedDays días transcurridos del mes (year, month) a la fecha now:
// el mes completo si ya pasó, el día actual si es el mes en curso y 0 si es futuro.
func ElapsedDays(year, month int, now time.Time) int {
	curYear, curMonth := now.Year(), int(now.Month())
	switch {
	case year < curYear || (year == curYear && month < curMonth):
		return daysIn(year, month)
	case year == curYear && month == curMonth:
		return now.Day()
	default:
		return 0
	}
}
