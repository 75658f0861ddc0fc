package entity

// SalesRecord ventas de un mes para una tienda y un tipo de foto (photo_detail_type).
// DailySales es disperso: una fecha ausente equivale a cero.
type SalesRecord struct {
	StoreName        string            `json:"store_name"`
	PhotoDetailType  string            `json:"photo_detail_type"`
	DailySales       map[string]Amount `json:"daily_sales"` // clave YYYY-MM-DD
	MonthlyTotal     Amount            `json:"monthly_total"`
	EstimatedMonthly Amount            `json:"estimated_monthly"` // proyección a mes completo
}

// SalesOn devuelve la venta de la fecha dada o cero si no existe.
func (r SalesRecord) SalesOn(dateKey string) Amount {
	if v, ok := r.DailySales[dateKey]; ok {
		return v
	}
	return Amount{}
}

// TrendRecord total vendido por una tienda en un mes histórico.
type TrendRecord struct {
	StoreName  string `json:"store_name"`
	SalesYear  int    `json:"sales_year"`
	SalesMonth int    `json:"sales_month"`
	TotalSales Amount `json:"total_sales"`
}
