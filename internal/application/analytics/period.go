package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/kiosk-sales/internal/domain"
	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
)

// parsePeriod convierte los strings de fecha (YYYY-MM-DD) en días completos.
// Vacíos: start = primer día del mes de now, end = hoy. El preset, si viene, tiene prioridad.
func parsePeriod(startStr, endStr, preset string, now time.Time) (start, end time.Time, err error) {
	if preset = strings.TrimSpace(preset); preset != "" {
		s, e, ok := calendar.PresetRange(preset, now)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: preset desconocido %q", domain.ErrInvalidInput, preset)
		}
		return s, e, nil
	}

	if endStr == "" {
		end = calendar.StartOfDay(now)
	} else {
		end, err = time.ParseInLocation(calendar.DateLayout, endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date inválido %q", domain.ErrInvalidInput, endStr)
		}
	}

	if startStr == "" {
		start = calendar.FirstOfMonth(now)
	} else {
		start, err = time.ParseInLocation(calendar.DateLayout, startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date inválido %q", domain.ErrInvalidInput, startStr)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return start, end, nil
}
