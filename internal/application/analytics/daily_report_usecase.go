// Package analytics contiene los casos de uso de reportes de ventas: el reporte
// diario (tabla pivote + comparación por tienda), el resumen del día/período y
// el listado de transacciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/internal/application/ports"
	"github.com/jhoicas/kiosk-sales/internal/domain"
	"github.com/jhoicas/kiosk-sales/internal/domain/calendar"
	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
	"github.com/jhoicas/kiosk-sales/internal/domain/report"
	"github.com/jhoicas/kiosk-sales/internal/domain/repository"
	"github.com/jhoicas/kiosk-sales/pkg/logger"
)

const (
	minYear = 2000
	maxYear = 2100
)

// DailyReportUseCase arma el reporte diario de un mes.
//
// Las dos consultas (registros del mes y tendencia de 12 meses) se lanzan en
// paralelo; el pivote y la comparación se calculan por separado sobre el mismo
// resultado. Nada se cachea: cada request recalcula todo.
type DailyReportUseCase struct {
	salesRepo repository.SalesRepository
	exporter  ports.ReportExporter
	pivot     report.PivotBuilder
	log       *logger.Logger
	now       func() time.Time
}

// NewDailyReportUseCase construye el caso de uso. locale define el orden de tiendas.
func NewDailyReportUseCase(
	salesRepo repository.SalesRepository,
	exporter ports.ReportExporter,
	locale language.Tag,
	log *logger.Logger,
) *DailyReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DailyReportUseCase{
		salesRepo: salesRepo,
		exporter:  exporter,
		pivot:     report.NewPivotBuilder(locale),
		log:       log.Component("daily_report"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DailyReportUseCase) WithClock(now func() time.Time) *DailyReportUseCase {
	uc.now = now
	return uc
}

// GetDailyReport valida el mes pedido y construye el DailyReportDTO.
// Si la tendencia falla el reporte se entrega igual, sin MoM/YoY y con
// TrendAvailable=false.
func (uc *DailyReportUseCase) GetDailyReport(ctx context.Context, req dto.DailyReportRequest) (*dto.DailyReportDTO, error) {
	if req.Year < minYear || req.Year > maxYear {
		return nil, fmt.Errorf("%w: year debe estar entre %d y %d", domain.ErrInvalidInput, minYear, maxYear)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month debe estar entre 1 y 12", domain.ErrInvalidInput)
	}

	type recordsResult struct {
		rows []entity.SalesRecord
		err  error
	}
	type trendResult struct {
		rows []entity.TrendRecord
		err  error
	}

	recCh := make(chan recordsResult, 1)
	trendCh := make(chan trendResult, 1)

	go func() {
		rows, err := uc.salesRepo.ListMonthlyRecords(ctx, req.Year, req.Month, req.StoreName)
		recCh <- recordsResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.ListMonthlyTrend(ctx, req.Year, req.Month)
		trendCh <- trendResult{rows, err}
	}()

	rec := <-recCh
	tr := <-trendCh

	if rec.err != nil {
		return nil, fmt.Errorf("daily report: registros del mes: %w", rec.err)
	}
	trendAvailable := true
	if tr.err != nil {
		uc.log.Warn().Err(tr.err).
			Int("year", req.Year).Int("month", req.Month).
			Msg("tendencia no disponible; se omiten MoM/YoY")
		tr.rows = nil
		trendAvailable = false
	}
	trend := tr.rows
	if req.StoreName != "" {
		trend = filterTrend(trend, req.StoreName)
	}

	invalid := countInvalid(rec.rows)
	if invalid > 0 {
		uc.log.Warn().Int("invalid_values", invalid).
			Str("store", req.StoreName).Int("year", req.Year).Int("month", req.Month).
			Msg("montos no numéricos en la fuente de ventas")
	}

	days := calendar.DaysInMonth(req.Year, req.Month)
	rows := uc.pivot.Build(rec.rows, days, req.Year, req.Month)
	summaries := report.BuildStoreSummary(rec.rows, trend, req.Year, req.Month)
	total := report.BuildSummaryTotal(summaries, trend, req.Year, req.Month)
	series := report.BuildTrendSeries(trend, req.Year, req.Month)

	out := &dto.DailyReportDTO{
		ReportID:       uuid.NewString(),
		Year:           req.Year,
		Month:          req.Month,
		StoreName:      req.StoreName,
		Days:           days,
		ProgressRate:   report.ProgressRate(req.Year, req.Month, uc.now()),
		Rows:           toPivotRowDTOs(rows),
		StoreSummaries: toStoreSummaryDTOs(summaries),
		SummaryTotal:   toSummaryTotalDTO(total),
		Trend:          toTrendSeriesDTO(series),
		TrendAvailable: trendAvailable,
		InvalidValues:  invalid,
	}
	uc.log.Debug().Str("report_id", out.ReportID).Int("rows", len(out.Rows)).Msg("reporte diario generado")
	return out, nil
}

// ExportDailyReport calcula el reporte y lo serializa con el exportador configurado.
func (uc *DailyReportUseCase) ExportDailyReport(ctx context.Context, req dto.DailyReportRequest) ([]byte, string, error) {
	if uc.exporter == nil {
		return nil, "", fmt.Errorf("daily report: exportador no configurado")
	}
	rep, err := uc.GetDailyReport(ctx, req)
	if err != nil {
		return nil, "", err
	}
	data, contentType, err := uc.exporter.ExportDailyReport(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("daily report: exportar: %w", err)
	}
	return data, contentType, nil
}

func filterTrend(trend []entity.TrendRecord, store string) []entity.TrendRecord {
	out := make([]entity.TrendRecord, 0, len(trend))
	for _, t := range trend {
		if t.StoreName == store {
			out = append(out, t)
		}
	}
	return out
}

// countInvalid cuenta montos no numéricos en los registros.
func countInvalid(records []entity.SalesRecord) int {
	n := 0
	for _, r := range records {
		if !r.MonthlyTotal.Valid() {
			n++
		}
		if !r.EstimatedMonthly.Valid() {
			n++
		}
		for _, v := range r.DailySales {
			if !v.Valid() {
				n++
			}
		}
	}
	return n
}
