package analytics_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// fakeSalesRepo implementa repository.SalesRepository en memoria y registra
// los argumentos recibidos.
type fakeSalesRepo struct {
	mu sync.Mutex

	records  []entity.SalesRecord
	trend    []entity.TrendRecord
	daily    []entity.DailyTotal
	orders   map[string][]entity.Order // por tienda
	recErr   error
	trendErr error
	dailyErr error
	orderErr error

	dailyCalls []dailyCall
	orderCalls []string
}

type dailyCall struct {
	store      string
	start, end time.Time
}

func (f *fakeSalesRepo) ListMonthlyRecords(_ context.Context, _, _ int, storeName string) ([]entity.SalesRecord, error) {
	if f.recErr != nil {
		return nil, f.recErr
	}
	if storeName == "" {
		return f.records, nil
	}
	var out []entity.SalesRecord
	for _, r := range f.records {
		if r.StoreName == storeName {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSalesRepo) ListMonthlyTrend(context.Context, int, int) ([]entity.TrendRecord, error) {
	return f.trend, f.trendErr
}

func (f *fakeSalesRepo) ListDailyTotals(_ context.Context, storeName string, start, end time.Time) ([]entity.DailyTotal, error) {
	f.mu.Lock()
	f.dailyCalls = append(f.dailyCalls, dailyCall{storeName, start, end})
	f.mu.Unlock()
	return f.daily, f.dailyErr
}

func (f *fakeSalesRepo) ListOrders(_ context.Context, storeName string, _, _ time.Time) ([]entity.Order, error) {
	f.mu.Lock()
	f.orderCalls = append(f.orderCalls, storeName)
	f.mu.Unlock()
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.orders[storeName], nil
}

// fakeExporter registra el reporte recibido.
type fakeExporter struct {
	got *dto.DailyReportDTO
	err error
}

func (e *fakeExporter) ExportDailyReport(_ context.Context, r *dto.DailyReportDTO) ([]byte, string, error) {
	e.got = r
	if e.err != nil {
		return nil, "", e.err
	}
	return []byte("xlsx"), "application/test", nil
}

func amt(v int64) entity.Amount { return entity.AmountFromInt(v) }

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }
