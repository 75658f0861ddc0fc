package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// UnknownDetailType etiqueta para pedidos sin photo_detail_type.
const UnknownDetailType = "N/A"

// DuplicateWindow separación máxima entre dos pedidos consecutivos de la misma
// tienda y tipo para marcarlos como posible duplicado.
const DuplicateWindow = 20 * time.Second

// CompositionItem participación de un tipo de foto en los pedidos.
type CompositionItem struct {
	Type       string
	Count      int
	Percentage decimal.Decimal // un decimal
}

// BuildComposition cuenta pedidos por photo_detail_type y los ordena por
// cantidad descendente (empates en orden de primera aparición).
func BuildComposition(orders []entity.Order) []CompositionItem {
	if len(orders) == 0 {
		return []CompositionItem{}
	}
	var items []CompositionItem
	pos := make(map[string]int)
	for _, o := range orders {
		t := o.PhotoDetailType
		if t == "" {
			t = UnknownDetailType
		}
		i, ok := pos[t]
		if !ok {
			i = len(items)
			pos[t] = i
			items = append(items, CompositionItem{Type: t})
		}
		items[i].Count++
	}

	total := decimal.NewFromInt(int64(len(orders)))
	for i := range items {
		items[i].Percentage = decimal.NewFromInt(int64(items[i].Count)).
			Div(total).Mul(hundred).Round(1)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	return items
}

// FlaggedOrder pedido con la marca de posible duplicado.
type FlaggedOrder struct {
	entity.Order
	SuspectedDuplicate bool
}

// FlagSuspectedDuplicates ordena los pedidos por fecha descendente y marca un
// pedido cuando el siguiente de la lista es de la misma tienda y tipo y está a
// window o menos de distancia.
func FlagSuspectedDuplicates(orders []entity.Order, window time.Duration) []FlaggedOrder {
	sorted := make([]entity.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp().After(sorted[j].Timestamp())
	})

	out := make([]FlaggedOrder, len(sorted))
	for i, o := range sorted {
		out[i] = FlaggedOrder{Order: o}
		if i+1 >= len(sorted) {
			continue
		}
		next := sorted[i+1]
		diff := o.Timestamp().Sub(next.Timestamp())
		if diff < 0 {
			diff = -diff
		}
		out[i].SuspectedDuplicate = o.StoreName == next.StoreName &&
			o.PhotoDetailType == next.PhotoDetailType &&
			diff <= window
	}
	return out
}

// PeriodTotals suma de ventas y pedidos de una serie diaria.
type PeriodTotals struct {
	TotalSales entity.Amount
	OrderCount entity.Amount
}

// SumDailyTotals acumula las filas diarias del período.
func SumDailyTotals(rows []entity.DailyTotal) PeriodTotals {
	var t PeriodTotals
	for _, r := range rows {
		t.TotalSales = t.TotalSales.Add(r.TotalSales)
		t.OrderCount = t.OrderCount.Add(r.OrderCount)
	}
	return t
}
