package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// TrendMonths meses que cubre la serie de tendencia.
const TrendMonths = 12

// TrendSeries serie mensual por tienda para el gráfico de tendencia.
type TrendSeries struct {
	Labels   []string // "YYYY-MM" ascendente, termina en el mes consultado
	Datasets []TrendDataset
}

// TrendDataset valores de una tienda alineados con TrendSeries.Labels.
type TrendDataset struct {
	StoreName string
	Values    []entity.Amount
}

// BuildTrendSeries arma los últimos TrendMonths meses que terminan en
// (year, month). Las tiendas aparecen en el orden en que llegan en trend;
// meses fuera de la ventana se ignoran y los faltantes quedan en 0.
func BuildTrendSeries(trend []entity.TrendRecord, year, month int) TrendSeries {
	labels := calendar.LastNMonths(year, month, TrendMonths)
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}

	var datasets []TrendDataset
	byStore := make(map[string]int)
	for _, t := range trend {
		if _, ok := byStore[t.StoreName]; !ok {
			byStore[t.StoreName] = len(datasets)
			datasets = append(datasets, TrendDataset{
				StoreName: t.StoreName,
				Values:    make([]entity.Amount, len(labels)),
			})
		}
	}
	for _, t := range trend {
		i, ok := pos[calendar.MonthLabel(t.SalesYear, t.SalesMonth)]
		if !ok {
			continue
		}
		datasets[byStore[t.StoreName]].Values[i] = t.TotalSales
	}
	return TrendSeries{Labels: labels, Datasets: datasets}
}

// ProgressRate avance del mes consultado respecto a now, en porcentaje con dos
// decimales: 100 para meses pasados, día/días_del_mes para el mes en curso y
// nulo para meses futuros.
func ProgressRate(year, month int, now time.Time) decimal.NullDecimal {
	curYear, curMonth := now.Year(), int(now.Month())
	switch {
	case year < curYear || (year == curYear && month < curMonth):
		return decimal.NewNullDecimal(hundred.Round(2))
	case year == curYear && month == curMonth:
		total := decimal.NewFromInt(int64(len(calendar.DaysInMonth(year, month))))
		day := decimal.NewFromInt(int64(now.Day()))
		return decimal.NewNullDecimal(day.Div(total).Mul(hundred).Round(2))
	default:
		return decimal.NullDecimal{}
	}
}

// EstimateMonthly proyecta total a mes completo: total / díasTranscurridos * díasDelMes.
// Sin días transcurridos (mes futuro) devuelve total sin proyectar.
func EstimateMonthly(total entity.Amount, elapsedDays, daysInMonth int) entity.Amount {
	if !total.Valid() || elapsedDays <= 0 || elapsedDays >= daysInMonth {
		return total
	}
	d := total.Decimal().
		Mul(decimal.NewFromInt(int64(daysInMonth))).
		Div(decimal.NewFromInt(int64(elapsedDays)))
	return entity.NewAmount(d)
}
