package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
	"github.com/jhoicas/kiosk-sales/internal/domain/report"
	"github.com/jhoicas/kiosk-sales/internal/domain/repository"
)

// SalesSummaryUseCase resumen de ventas de una tienda: el día de hoy (totales
// y composición por tipo de foto) y un período arbitrario día por día.
type SalesSummaryUseCase struct {
	salesRepo repository.SalesRepository
	stores    []string
	now       func() time.Time
}

// NewSalesSummaryUseCase construye el caso de uso. stores es la lista de
// tiendas del selector; la primera es la tienda por defecto.
func NewSalesSummaryUseCase(salesRepo repository.SalesRepository, stores []string) *SalesSummaryUseCase {
	return &SalesSummaryUseCase{salesRepo: salesRepo, stores: stores, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *SalesSummaryUseCase) WithClock(now func() time.Time) *SalesSummaryUseCase {
	uc.now = now
	return uc
}

// Stores devuelve las tiendas configuradas.
func (uc *SalesSummaryUseCase) Stores() dto.StoreListDTO {
	out := make([]string, len(uc.stores))
	copy(out, uc.stores)
	return dto.StoreListDTO{Stores: out}
}

func (uc *SalesSummaryUseCase) defaultStore(store string) string {
	if store == "" && len(uc.stores) > 0 {
		return uc.stores[0]
	}
	return store
}

// GetToday totales del día y composición de pedidos por photo_detail_type.
//
// Dos llamadas en paralelo:
//  1. ListDailyTotals(hoy, hoy) → TotalSales + OrderCount
//  2. ListOrders(hoy, hoy)      → Composition
func (uc *SalesSummaryUseCase) GetToday(ctx context.Context, storeName string) (*dto.TodaySummaryDTO, error) {
	storeName = uc.defaultStore(storeName)
	today := calendar.StartOfDay(uc.now())

	type totalsResult struct {
		rows []entity.DailyTotal
		err  error
	}
	type ordersResult struct {
		rows []entity.Order
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		rows, err := uc.salesRepo.ListDailyTotals(ctx, storeName, today, today)
		totalsCh <- totalsResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.ListOrders(ctx, storeName, today, today)
		ordersCh <- ordersResult{rows, err}
	}()

	totals := <-totalsCh
	orders := <-ordersCh

	if totals.err != nil {
		return nil, fmt.Errorf("sales summary: totales de hoy: %w", totals.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("sales summary: pedidos de hoy: %w", orders.err)
	}

	sum := report.SumDailyTotals(totals.rows)
	items := report.BuildComposition(orders.rows)
	composition := make([]dto.CompositionItemDTO, 0, len(items))
	for _, it := range items {
		composition = append(composition, dto.CompositionItemDTO{
			Type:       it.Type,
			Count:      it.Count,
			Percentage: it.Percentage,
		})
	}

	return &dto.TodaySummaryDTO{
		StoreName:   storeName,
		Date:        today.Format(calendar.DateLayout),
		TotalSales:  sum.TotalSales,
		OrderCount:  sum.OrderCount,
		Composition: composition,
	}, nil
}

// GetPeriod ventas día por día del período y su suma.
func (uc *SalesSummaryUseCase) GetPeriod(ctx context.Context, req dto.PeriodRequest) (*dto.PeriodSummaryDTO, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate, req.Preset, uc.now())
	if err != nil {
		return nil, err
	}
	storeName := uc.defaultStore(req.StoreName)

	rows, err := uc.salesRepo.ListDailyTotals(ctx, storeName, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales summary: período: %w", err)
	}

	sum := report.SumDailyTotals(rows)
	daily := make([]dto.DailyTotalDTO, 0, len(rows))
	for _, r := range rows {
		daily = append(daily, dto.DailyTotalDTO{
			Date:       r.Day(),
			TotalSales: r.TotalSales,
			OrderCount: r.OrderCount,
		})
	}

	return &dto.PeriodSummaryDTO{
		StoreName:  storeName,
		StartDate:  start.Format(calendar.DateLayout),
		EndDate:    end.Format(calendar.DateLayout),
		TotalSales: sum.TotalSales,
		OrderCount: sum.OrderCount,
		Daily:      daily,
	}, nil
}
