// Package report es el motor de reportes de ventas: transforma filas planas por
// tienda/día en la tabla pivote con subtotales y total general, y calcula las
// comparaciones mes-a-mes y año-a-año por tienda.
//
// Todas las funciones son puras: no hay estado de paquete mutable y cada
// invocación trabaja con acumuladores propios.
package report

import (
	"golang.org/x/text/language"

	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// PivotRow fila de la tabla pivote. Es un tipo suma cerrado: solo
// GrandTotalRow, SubtotalRow y DataRow lo implementan, de modo que el consumidor
// puede hacer un type switch exhaustivo.
type PivotRow interface {
	pivotRow()
}

// GrandTotalRow total general de todas las tiendas; siempre es la primera fila.
type GrandTotalRow struct {
	DailySalesSum    map[int]entity.Amount // una entrada por cada día del mes
	MonthlyTotal     entity.Amount
	EstimatedMonthly entity.Amount
}

// SubtotalRow subtotal de una tienda; va justo después de su última fila de datos.
type SubtotalRow struct {
	StoreName        string
	DailySalesSum    map[int]entity.Amount
	MonthlyTotal     entity.Amount
	EstimatedMonthly entity.Amount
	ColorIndex       int
}

// DataRow registro original más los metadatos de agrupación.
type DataRow struct {
	entity.SalesRecord
	ColorIndex     int  // 0/1, alterna por tienda
	RowSpan        int  // filas de datos de la tienda + 1 (subtotal)
	IsFirstInGroup bool // solo la primera fila de datos de cada tienda
}

func (GrandTotalRow) pivotRow() {}
func (SubtotalRow) pivotRow()   {}
func (DataRow) pivotRow()       {}

// PivotBuilder construye la tabla pivote ordenando tiendas según Locale.
type PivotBuilder struct {
	Locale language.Tag
}

// NewPivotBuilder construye el builder.
func NewPivotBuilder(locale language.Tag) PivotBuilder {
	return PivotBuilder{Locale: locale}
}

// BuildPivot usa DefaultLocale para el orden de tiendas.
func BuildPivot(records []entity.SalesRecord, days []int, year, month int) []PivotRow {
	return NewPivotBuilder(DefaultLocale).Build(records, days, year, month)
}

// accumulator sumas corrientes de un grupo (tienda o total general).
type accumulator struct {
	daily     map[int]entity.Amount
	monthly   entity.Amount
	estimated entity.Amount
}

func newAccumulator(days []int) *accumulator {
	daily := make(map[int]entity.Amount, len(days))
	for _, d := range days {
		daily[d] = entity.Amount{}
	}
	return &accumulator{daily: daily}
}

func (a *accumulator) add(rec entity.SalesRecord, dateKeys map[int]string) {
	for day, key := range dateKeys {
		a.daily[day] = a.daily[day].Add(rec.SalesOn(key))
	}
	a.monthly = a.monthly.Add(rec.MonthlyTotal)
	a.estimated = a.estimated.Add(rec.EstimatedMonthly)
}

func (a *accumulator) subtotal(store string, colorIndex int) SubtotalRow {
	return SubtotalRow{
		StoreName:        store,
		DailySalesSum:    a.daily,
		MonthlyTotal:     a.monthly,
		EstimatedMonthly: a.estimated,
		ColorIndex:       colorIndex,
	}
}

// Build devuelve [total general, datos tienda 1..., subtotal tienda 1, datos tienda 2..., ...].
// Sin registros devuelve una secuencia vacía (sin fila de total general).
// days debe ser la lista exacta de días del mes (ver calendar.DaysInMonth).
func (b PivotBuilder) Build(records []entity.SalesRecord, days []int, year, month int) []PivotRow {
	if len(records) == 0 {
		return []PivotRow{}
	}

	sorted := sortByStore(records, b.Locale)

	dateKeys := make(map[int]string, len(days))
	for _, d := range days {
		dateKeys[d] = calendar.DateKey(year, month, d)
	}

	rowCounts := make(map[string]int)
	for _, rec := range sorted {
		rowCounts[rec.StoreName]++
	}

	grand := newAccumulator(days)
	var (
		store       *accumulator
		current     string
		colorIndex  int
		rowsInGroup int
	)
	rows := make([]PivotRow, 0, len(sorted)+len(rowCounts))

	for _, rec := range sorted {
		if store != nil && rec.StoreName != current {
			rows = append(rows, store.subtotal(current, colorIndex))
			colorIndex = 1 - colorIndex
			store = nil
		}
		if store == nil {
			store = newAccumulator(days)
			rowsInGroup = 0
		}
		current = rec.StoreName

		rows = append(rows, DataRow{
			SalesRecord:    rec,
			ColorIndex:     colorIndex,
			RowSpan:        rowCounts[current] + 1,
			IsFirstInGroup: rowsInGroup == 0,
		})
		rowsInGroup++

		store.add(rec, dateKeys)
		grand.add(rec, dateKeys)
	}
	rows = append(rows, store.subtotal(current, colorIndex))

	out := make([]PivotRow, 0, len(rows)+1)
	out = append(out, GrandTotalRow{
		DailySalesSum:    grand.daily,
		MonthlyTotal:     grand.monthly,
		EstimatedMonthly: grand.estimated,
	})
	return append(out, rows...)
}
