package entity

import (
	"strings"
	"time"
)

// Order pedido individual registrado en un kiosco.
type Order struct {
	ID              string    `json:"order_id"`
	StoreName       string    `json:"store_name"`
	PhotoDetailType string    `json:"photo_detail_type"`
	TotalAmount     Amount    `json:"total_amount"`
	CreatedAt       time.Time `json:"created_at"`
	OrderDate       time.Time `json:"order_date"` // respaldo cuando created_at no viene
}

// Timestamp devuelve CreatedAt o, si está vacío, OrderDate.
func (o Order) Timestamp() time.Time {
	if o.CreatedAt.IsZero() {
		return o.OrderDate
	}
	return o.CreatedAt
}

// DailyTotal venta agregada de una tienda en un día.
type DailyTotal struct {
	StatDate   string `json:"stat_date"` // YYYY-MM-DD o ISO completo
	TotalSales Amount `json:"total_sales"`
	OrderCount Amount `json:"order_count"`
}

// Day devuelve la parte de fecha de StatDate (sin hora).
func (d DailyTotal) Day() string {
	day, _, _ := strings.Cut(d.StatDate, "T")
	return day
}
