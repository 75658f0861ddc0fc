package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosk-sales/internal/domain"
	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
	"github.com/jhoicas/kiosk-sales/internal/domain/report"
	"github.com/jhoicas/kiosk-sales/internal/domain/repository"
)

var (
	_ repository.SalesRepository = (*SalesRepo)(nil)
	_ repository.OrderWriter     = (*SalesRepo)(nil)
)

// SalesRepo consultas de ventas sobre la tabla orders (ver migrations/001_sales.sql).
// Usable con pool o tx.
type SalesRepo struct {
	q   Querier
	now func() time.Time
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier). now se
// usa para proyectar el total del mes en curso; nil = time.Now.
func NewSalesRepository(q Querier, now func() time.Time) *SalesRepo {
	if now == nil {
		now = time.Now
	}
	return &SalesRepo{q: q, now: now}
}

// ListMonthlyRecords agrupa los pedidos del mes por tienda, tipo y día.
// estimated_monthly = total / días transcurridos × días del mes.
func (r *SalesRepo) ListMonthlyRecords(ctx context.Context, year, month int, storeName string) ([]entity.SalesRecord, error) {
	const query = `
	SELECT
	    store_name,
	    COALESCE(photo_detail_type, '') AS photo_detail_type,
	    created_at::date                AS sales_date,
	    SUM(total_amount)               AS total
	FROM orders
	WHERE created_at >= $1 AND created_at < $2
	  AND ($3 = '' OR store_name = $3)
	GROUP BY 1, 2, 3
	ORDER BY 1, 2, 3`

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := r.q.Query(ctx, query, start, end, storeName)
	if err != nil {
		return nil, fmt.Errorf("sales.ListMonthlyRecords: %w", err)
	}
	defer rows.Close()

	type groupKey struct{ store, detail string }
	var (
		records []entity.SalesRecord
		pos     = make(map[groupKey]int)
	)
	for rows.Next() {
		var (
			k     groupKey
			day   time.Time
			total decimal.Decimal
		)
		if err := rows.Scan(&k.store, &k.detail, &day, &total); err != nil {
			return nil, fmt.Errorf("sales.ListMonthlyRecords scan: %w", err)
		}
		i, ok := pos[k]
		if !ok {
			i = len(records)
			pos[k] = i
			records = append(records, entity.SalesRecord{
				StoreName:       k.store,
				PhotoDetailType: k.detail,
				DailySales:      make(map[string]entity.Amount),
			})
		}
		amount := entity.NewAmount(total)
		records[i].DailySales[day.Format(calendar.DateLayout)] = amount
		records[i].MonthlyTotal = records[i].MonthlyTotal.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.ListMonthlyRecords rows: %w", err)
	}

	elapsed := calendar.ElapsedDays(year, month, r.now())
	days := len(calendar.DaysInMonth(year, month))
	for i := range records {
		records[i].EstimatedMonthly = report.EstimateMonthly(records[i].MonthlyTotal, elapsed, days)
	}
	return records, nil
}

// ListMonthlyTrend totales mensuales por tienda de los 12 meses que terminan en
// (year, month) más el mismo mes del año anterior, base del YoY.
func (r *SalesRepo) ListMonthlyTrend(ctx context.Context, year, month int) ([]entity.TrendRecord, error) {
	const query = `
	SELECT
	    store_name,
	    EXTRACT(YEAR  FROM created_at)::int AS sales_year,
	    EXTRACT(MONTH FROM created_at)::int AS sales_month,
	    SUM(total_amount)                   AS total_sales
	FROM orders
	WHERE created_at >= $1 AND created_at < $2
	GROUP BY 1, 2, 3
	ORDER BY 2, 3, 1`

	fromYear, fromMonth := calendar.AddMonths(year, month, -report.TrendMonths)
	start := time.Date(fromYear, time.Month(fromMonth), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales.ListMonthlyTrend: %w", err)
	}
	defer rows.Close()

	var out []entity.TrendRecord
	for rows.Next() {
		var (
			t     entity.TrendRecord
			total decimal.Decimal
		)
		if err := rows.Scan(&t.StoreName, &t.SalesYear, &t.SalesMonth, &total); err != nil {
			return nil, fmt.Errorf("sales.ListMonthlyTrend scan: %w", err)
		}
		t.TotalSales = entity.NewAmount(total)
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListDailyTotals ventas y pedidos por día de una tienda.
func (r *SalesRepo) ListDailyTotals(ctx context.Context, storeName string, start, end time.Time) ([]entity.DailyTotal, error) {
	const query = `
	SELECT
	    created_at::date  AS stat_date,
	    SUM(total_amount) AS total_sales,
	    COUNT(*)          AS order_count
	FROM orders
	WHERE ($1 = '' OR store_name = $1)
	  AND created_at >= $2 AND created_at < $3
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.q.Query(ctx, query, storeName, calendar.StartOfDay(start), calendar.StartOfDay(end).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("sales.ListDailyTotals: %w", err)
	}
	defer rows.Close()

	var out []entity.DailyTotal
	for rows.Next() {
		var (
			day   time.Time
			total decimal.Decimal
			count int64
		)
		if err := rows.Scan(&day, &total, &count); err != nil {
			return nil, fmt.Errorf("sales.ListDailyTotals scan: %w", err)
		}
		out = append(out, entity.DailyTotal{
			StatDate:   day.Format(calendar.DateLayout),
			TotalSales: entity.NewAmount(total),
			OrderCount: entity.AmountFromInt(count),
		})
	}
	return out, rows.Err()
}

// ListOrders pedidos individuales, más recientes primero.
func (r *SalesRepo) ListOrders(ctx context.Context, storeName string, start, end time.Time) ([]entity.Order, error) {
	const query = `
	SELECT id::text, store_name, COALESCE(photo_detail_type, ''), total_amount, created_at
	FROM orders
	WHERE ($1 = '' OR store_name = $1)
	  AND created_at >= $2 AND created_at < $3
	ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, storeName, calendar.StartOfDay(start), calendar.StartOfDay(end).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("sales.ListOrders: %w", err)
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var (
			o     entity.Order
			total decimal.Decimal
		)
		if err := rows.Scan(&o.ID, &o.StoreName, &o.PhotoDetailType, &total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("sales.ListOrders scan: %w", err)
		}
		o.TotalAmount = entity.NewAmount(total)
		out = append(out, o)
	}
	return out, rows.Err()
}

// InsertOrder inserta un pedido. Un ID que no es UUID se convierte en un UUID
// determinista (SHA-1) para que recargar el mismo archivo detecte duplicados.
// ON CONFLICT evita abortar la transacción cuando se carga por lotes.
func (r *SalesRepo) InsertOrder(ctx context.Context, o entity.Order) error {
	const query = `
	INSERT INTO orders (id, store_name, photo_detail_type, total_amount, created_at)
	VALUES ($1, $2, NULLIF($3, ''), $4, $5)
	ON CONFLICT (id) DO NOTHING`

	if !o.TotalAmount.Valid() {
		return fmt.Errorf("sales.InsertOrder %s: total_amount no numérico: %w", o.ID, domain.ErrInvalidInput)
	}
	if o.StoreName == "" {
		return fmt.Errorf("sales.InsertOrder %s: store_name vacío: %w", o.ID, domain.ErrInvalidInput)
	}
	tag, err := r.q.Exec(ctx, query, orderUUID(o.ID), o.StoreName, o.PhotoDetailType, o.TotalAmount.Decimal(), o.Timestamp())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("sales.InsertOrder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicate
	}
	return nil
}

func orderUUID(id string) uuid.UUID {
	if id == "" {
		return uuid.New()
	}
	if u, err := uuid.Parse(id); err == nil {
		return u
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(id))
}
