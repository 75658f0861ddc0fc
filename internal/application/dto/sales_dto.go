package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// TodaySummaryDTO respuesta de GET /api/sales/today.
type TodaySummaryDTO struct {
	StoreName   string               `json:"store_name"`
	Date        string               `json:"date"` // YYYY-MM-DD
	TotalSales  entity.Amount        `json:"total_sales"`
	OrderCount  entity.Amount        `json:"order_count"`
	Composition []CompositionItemDTO `json:"composition"`
}

// CompositionItemDTO participación de un tipo de foto en los pedidos del día.
type CompositionItemDTO struct {
	Type       string          `json:"type"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"` // un decimal
}

// PeriodRequest parámetros de GET /api/sales/period. Preset tiene prioridad
// sobre las fechas (this_week, last_week, this_month, last_month).
type PeriodRequest struct {
	StoreName string `query:"store_name"`
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`
	Preset    string `query:"preset"`
}

// PeriodSummaryDTO respuesta de GET /api/sales/period.
type PeriodSummaryDTO struct {
	StoreName  string          `json:"store_name"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalSales entity.Amount   `json:"total_sales"`
	OrderCount entity.Amount   `json:"order_count"`
	Daily      []DailyTotalDTO `json:"daily"`
}

// DailyTotalDTO ventas de un día del período.
type DailyTotalDTO struct {
	Date       string        `json:"date"`
	TotalSales entity.Amount `json:"total_sales"`
	OrderCount entity.Amount `json:"order_count"`
}

// StoreListDTO respuesta de GET /api/stores.
type StoreListDTO struct {
	Stores []string `json:"stores"`
}
