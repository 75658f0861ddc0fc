package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// StoreSummary acumulado del mes por tienda con variaciones porcentuales.
// MoM/YoY son nulos si no hay base de comparación (> 0) en el período previo.
type StoreSummary struct {
	StoreName        string
	MonthlyTotal     entity.Amount
	EstimatedMonthly entity.Amount
	MoM              decimal.NullDecimal
	YoY              decimal.NullDecimal
}

// SummaryTotal fila de totales de la tabla de tiendas. Las variaciones se
// recalculan con la suma de los valores previos, no con el promedio de los
// porcentajes por tienda.
type SummaryTotal struct {
	MonthlyTotal     entity.Amount
	EstimatedMonthly entity.Amount
	PrevMonthSales   entity.Amount
	PrevYearSales    entity.Amount
	MoM              decimal.NullDecimal
	YoY              decimal.NullDecimal
}

// trendIndex tienda -> "YYYY-MM" -> total_sales. Ante duplicados gana el último.
type trendIndex map[string]map[string]entity.Amount

func indexTrend(trend []entity.TrendRecord) trendIndex {
	idx := make(trendIndex)
	for _, t := range trend {
		byMonth, ok := idx[t.StoreName]
		if !ok {
			byMonth = make(map[string]entity.Amount)
			idx[t.StoreName] = byMonth
		}
		byMonth[calendar.MonthLabel(t.SalesYear, t.SalesMonth)] = t.TotalSales
	}
	return idx
}

func (idx trendIndex) lookup(store, label string) entity.Amount {
	return idx[store][label] // ausente = 0
}

// PercentChange (current - prev) / prev * 100. Nulo si prev no es estrictamente
// positivo o si current es inválido; nunca produce NaN ni Inf.
func PercentChange(current, prev entity.Amount) decimal.NullDecimal {
	if !prev.IsPositive() || !current.Valid() {
		return decimal.NullDecimal{}
	}
	p := prev.Decimal()
	return decimal.NewNullDecimal(current.Decimal().Sub(p).Div(p).Mul(hundred))
}

// BuildStoreSummary agrega records por tienda (orden de primera aparición) y
// calcula MoM contra el mes anterior y YoY contra el mismo mes del año previo,
// tomando los totales de trend.
func BuildStoreSummary(records []entity.SalesRecord, trend []entity.TrendRecord, year, month int) []StoreSummary {
	if len(records) == 0 {
		return []StoreSummary{}
	}

	order := make([]string, 0)
	totals := make(map[string]*StoreSummary)
	for _, rec := range records {
		s, ok := totals[rec.StoreName]
		if !ok {
			s = &StoreSummary{StoreName: rec.StoreName}
			totals[rec.StoreName] = s
			order = append(order, rec.StoreName)
		}
		s.MonthlyTotal = s.MonthlyTotal.Add(rec.MonthlyTotal)
		s.EstimatedMonthly = s.EstimatedMonthly.Add(rec.EstimatedMonthly)
	}

	prevMonth := calendar.PrevMonthLabel(year, month)
	prevYear := calendar.PrevYearLabel(year, month)
	idx := indexTrend(trend)

	out := make([]StoreSummary, 0, len(order))
	for _, name := range order {
		s := *totals[name]
		s.MoM = PercentChange(s.EstimatedMonthly, idx.lookup(name, prevMonth))
		s.YoY = PercentChange(s.EstimatedMonthly, idx.lookup(name, prevYear))
		out = append(out, s)
	}
	return out
}

// BuildSummaryTotal deriva la fila de totales a partir de los resúmenes por
// tienda. Los valores previos se suman sobre las tiendas presentes en summaries.
func BuildSummaryTotal(summaries []StoreSummary, trend []entity.TrendRecord, year, month int) SummaryTotal {
	prevMonth := calendar.PrevMonthLabel(year, month)
	prevYear := calendar.PrevYearLabel(year, month)
	idx := indexTrend(trend)

	var total SummaryTotal
	for _, s := range summaries {
		total.MonthlyTotal = total.MonthlyTotal.Add(s.MonthlyTotal)
		total.EstimatedMonthly = total.EstimatedMonthly.Add(s.EstimatedMonthly)
		total.PrevMonthSales = total.PrevMonthSales.Add(idx.lookup(s.StoreName, prevMonth))
		total.PrevYearSales = total.PrevYearSales.Add(idx.lookup(s.StoreName, prevYear))
	}
	total.MoM = PercentChange(total.EstimatedMonthly, total.PrevMonthSales)
	total.YoY = PercentChange(total.EstimatedMonthly, total.PrevYearSales)
	return total
}
