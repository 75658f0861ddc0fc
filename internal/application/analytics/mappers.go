package analytics

import (
	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/internal/domain/report"
)

// toPivotRowDTOs recorre el tipo suma PivotRow; cualquier variante nueva debe
// agregarse aquí.
func toPivotRowDTOs(rows []report.PivotRow) []dto.PivotRowDTO {
	out := make([]dto.PivotRowDTO, 0, len(rows))
	for _, row := range rows {
		switch r := row.(type) {
		case report.GrandTotalRow:
			out = append(out, dto.PivotRowDTO{
				Type:             dto.RowTypeGrandTotal,
				DailySalesSum:    r.DailySalesSum,
				MonthlyTotal:     r.MonthlyTotal,
				EstimatedMonthly: r.EstimatedMonthly,
			})
		case report.SubtotalRow:
			color := r.ColorIndex
			out = append(out, dto.PivotRowDTO{
				Type:             dto.RowTypeSubtotal,
				StoreName:        r.StoreName,
				DailySalesSum:    r.DailySalesSum,
				MonthlyTotal:     r.MonthlyTotal,
				EstimatedMonthly: r.EstimatedMonthly,
				ColorIndex:       &color,
			})
		case report.DataRow:
			color, span, first := r.ColorIndex, r.RowSpan, r.IsFirstInGroup
			out = append(out, dto.PivotRowDTO{
				Type:             dto.RowTypeData,
				StoreName:        r.StoreName,
				PhotoDetailType:  r.PhotoDetailType,
				DailySales:       r.DailySales,
				MonthlyTotal:     r.MonthlyTotal,
				EstimatedMonthly: r.EstimatedMonthly,
				ColorIndex:       &color,
				RowSpan:          &span,
				IsFirstInGroup:   &first,
			})
		}
	}
	return out
}

func toStoreSummaryDTOs(summaries []report.StoreSummary) []dto.StoreSummaryDTO {
	out := make([]dto.StoreSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.StoreSummaryDTO{
			StoreName:        s.StoreName,
			MonthlyTotal:     s.MonthlyTotal,
			EstimatedMonthly: s.EstimatedMonthly,
			MoM:              s.MoM,
			YoY:              s.YoY,
		})
	}
	return out
}

func toSummaryTotalDTO(t report.SummaryTotal) dto.SummaryTotalDTO {
	return dto.SummaryTotalDTO{
		MonthlyTotal:     t.MonthlyTotal,
		EstimatedMonthly: t.EstimatedMonthly,
		PrevMonthSales:   t.PrevMonthSales,
		PrevYearSales:    t.PrevYearSales,
		MoM:              t.MoM,
		YoY:              t.YoY,
	}
}

func toTrendSeriesDTO(s report.TrendSeries) dto.TrendSeriesDTO {
	out := dto.TrendSeriesDTO{Labels: s.Labels, Datasets: make([]dto.TrendDatasetDTO, 0, len(s.Datasets))}
	for _, d := range s.Datasets {
		out.Datasets = append(out.Datasets, dto.TrendDatasetDTO{StoreName: d.StoreName, Values: d.Values})
	}
	return out
}
