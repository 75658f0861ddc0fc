// Package salesapi adaptador de SalesRepository sobre la API remota de pedidos
// (GET /orders/search). Todas las respuestas son arreglos JSON.
package salesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/kiosk-sales/internal/domain"
	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
	"github.com/jhoicas/kiosk-sales/internal/domain/repository"
)

var _ repository.SalesRepository = (*Client)(nil)

const (
	searchPath   = "/orders/search"
	trendPeriod  = "12months_trend"
	maxBodyBytes = 16 << 20
)

// Client cliente HTTP de la API de pedidos.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL sin "/orders/search"; timeout <= 0 usa 30 s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListMonthlyRecords GET ?year&month. La API ya entrega daily_sales,
// monthly_total y estimated_monthly por tienda y tipo; store filtra localmente.
func (c *Client) ListMonthlyRecords(ctx context.Context, year, month int, storeName string) ([]entity.SalesRecord, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))

	var rows []entity.SalesRecord
	if err := c.get(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("salesapi.ListMonthlyRecords: %w", err)
	}
	if storeName == "" {
		return rows, nil
	}
	out := rows[:0]
	for _, r := range rows {
		if r.StoreName == storeName {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListMonthlyTrend GET ?period=12months_trend&year&month.
func (c *Client) ListMonthlyTrend(ctx context.Context, year, month int) ([]entity.TrendRecord, error) {
	q := url.Values{}
	q.Set("period", trendPeriod)
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))

	var rows []entity.TrendRecord
	if err := c.get(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("salesapi.ListMonthlyTrend: %w", err)
	}
	return rows, nil
}

// ListDailyTotals GET ?store_name&start_date&end_date&summary=true.
func (c *Client) ListDailyTotals(ctx context.Context, storeName string, start, end time.Time) ([]entity.DailyTotal, error) {
	var rows []entity.DailyTotal
	if err := c.get(ctx, rangeQuery(storeName, start, end, true), &rows); err != nil {
		return nil, fmt.Errorf("salesapi.ListDailyTotals: %w", err)
	}
	return rows, nil
}

// orderWire pedido tal como lo entrega la API: las fechas pueden venir sin zona.
type orderWire struct {
	ID              json.RawMessage `json:"order_id"`
	StoreName       string          `json:"store_name"`
	PhotoDetailType *string         `json:"photo_detail_type"`
	TotalAmount     entity.Amount   `json:"total_amount"`
	CreatedAt       string          `json:"created_at"`
	OrderDate       string          `json:"order_date"`
}

// ListOrders GET ?store_name&start_date&end_date&summary=false.
func (c *Client) ListOrders(ctx context.Context, storeName string, start, end time.Time) ([]entity.Order, error) {
	var rows []orderWire
	if err := c.get(ctx, rangeQuery(storeName, start, end, false), &rows); err != nil {
		return nil, fmt.Errorf("salesapi.ListOrders: %w", err)
	}
	return toOrders(rows), nil
}

// DecodeOrders decodifica un arreglo JSON de pedidos con el formato de la API
// (lo usa también la carga inicial desde archivo).
func DecodeOrders(data []byte) ([]entity.Order, error) {
	var rows []orderWire
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("salesapi.DecodeOrders: %w", err)
	}
	return toOrders(rows), nil
}

func toOrders(rows []orderWire) []entity.Order {
	out := make([]entity.Order, 0, len(rows))
	for _, w := range rows {
		o := entity.Order{
			ID:          rawID(w.ID),
			StoreName:   w.StoreName,
			TotalAmount: w.TotalAmount,
			CreatedAt:   parseTimestamp(w.CreatedAt),
			OrderDate:   parseTimestamp(w.OrderDate),
		}
		if w.PhotoDetailType != nil {
			o.PhotoDetailType = *w.PhotoDetailType
		}
		out = append(out, o)
	}
	return out
}

func rangeQuery(storeName string, start, end time.Time, summary bool) url.Values {
	q := url.Values{}
	if storeName != "" {
		q.Set("store_name", storeName)
	}
	q.Set("start_date", start.Format(calendar.DateLayout))
	q.Set("end_date", end.Format(calendar.DateLayout))
	q.Set("summary", strconv.FormatBool(summary))
	return q
}

// get ejecuta la consulta y decodifica el arreglo JSON en dst.
// Errores de red o HTTP != 200 envuelven domain.ErrUpstream.
func (c *Client) get(ctx context.Context, q url.Values, dst any) error {
	endpoint := c.baseURL + searchPath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUpstream, ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrUpstream, resp.StatusCode, truncate(string(body), 200))
	}
	if len(strings.TrimSpace(string(body))) == 0 || strings.TrimSpace(string(body)) == "null" {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: respuesta no es un arreglo JSON válido: %v", domain.ErrUpstream, err)
	}
	return nil
}

// rawID acepta order_id numérico o string.
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	calendar.DateLayout,
}

// parseTimestamp devuelve la hora cero si s está vacío o no se reconoce.
// Sin zona se interpreta como UTC.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
