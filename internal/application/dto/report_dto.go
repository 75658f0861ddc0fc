package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// Tipos de fila de la tabla pivote.
const (
	RowTypeGrandTotal = "grandtotal"
	RowTypeSubtotal   = "subtotal"
	RowTypeData       = "data"
)

// DailyReportRequest parámetros de GET /api/reports/daily.
type DailyReportRequest struct {
	Year      int    `query:"year"`
	Month     int    `query:"month"`
	StoreName string `query:"store_name"` // vacío = todas las tiendas
}

// PivotRowDTO fila serializada de la tabla pivote. Los campos presentes dependen de Type:
// grandtotal (daily_sales_sum), subtotal (store_name, daily_sales_sum, colorIndex)
// y data (campos del registro, colorIndex, rowSpan, isFirstInGroup).
type PivotRowDTO struct {
	Type             string                   `json:"type"`
	StoreName        string                   `json:"store_name,omitempty"`
	PhotoDetailType  string                   `json:"photo_detail_type,omitempty"`
	DailySales       map[string]entity.Amount `json:"daily_sales,omitempty"`
	DailySalesSum    map[int]entity.Amount    `json:"daily_sales_sum,omitempty"`
	MonthlyTotal     entity.Amount            `json:"monthly_total"`
	EstimatedMonthly entity.Amount            `json:"estimated_monthly"`
	ColorIndex       *int                     `json:"colorIndex,omitempty"`
	RowSpan          *int                     `json:"rowSpan,omitempty"`
	IsFirstInGroup   *bool                    `json:"isFirstInGroup,omitempty"`
}

// StoreSummaryDTO fila de la tabla de comparación por tienda.
// mom/yoy en porcentaje; null si no hay base de comparación.
type StoreSummaryDTO struct {
	StoreName        string              `json:"store_name"`
	MonthlyTotal     entity.Amount       `json:"monthly_total"`
	EstimatedMonthly entity.Amount       `json:"estimated_monthly"`
	MoM              decimal.NullDecimal `json:"mom"`
	YoY              decimal.NullDecimal `json:"yoy"`
}

// SummaryTotalDTO fila de totales de la tabla de comparación.
type SummaryTotalDTO struct {
	MonthlyTotal     entity.Amount       `json:"monthly_total"`
	EstimatedMonthly entity.Amount       `json:"estimated_monthly"`
	PrevMonthSales   entity.Amount       `json:"prev_month_sales"`
	PrevYearSales    entity.Amount       `json:"prev_year_sales"`
	MoM              decimal.NullDecimal `json:"mom"`
	YoY              decimal.NullDecimal `json:"yoy"`
}

// TrendSeriesDTO serie de 12 meses para el gráfico de tendencia.
type TrendSeriesDTO struct {
	Labels   []string          `json:"labels"`
	Datasets []TrendDatasetDTO `json:"datasets"`
}

// TrendDatasetDTO valores mensuales de una tienda, alineados con Labels.
type TrendDatasetDTO struct {
	StoreName string          `json:"store_name"`
	Values    []entity.Amount `json:"values"`
}

// DailyReportDTO respuesta de GET /api/reports/daily.
type DailyReportDTO struct {
	ReportID       string              `json:"report_id"`
	Year           int                 `json:"year"`
	Month          int                 `json:"month"`
	StoreName      string              `json:"store_name,omitempty"`
	Days           []int               `json:"days"`
	ProgressRate   decimal.NullDecimal `json:"progress_rate"` // % del mes transcurrido
	Rows           []PivotRowDTO       `json:"rows"`
	StoreSummaries []StoreSummaryDTO   `json:"store_summaries"`
	SummaryTotal   SummaryTotalDTO     `json:"summary_total"`
	Trend          TrendSeriesDTO      `json:"trend"`
	TrendAvailable bool                `json:"trend_available"` // false si la serie histórica falló
	InvalidValues  int                 `json:"invalid_values"`  // montos no numéricos recibidos de la fuente
}
