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

// TransactionUseCase listado de pedidos individuales de varias tiendas con la
// detección de posibles duplicados (mismo tipo en la misma tienda en menos de 20 s).
type TransactionUseCase struct {
	salesRepo repository.SalesRepository
	stores    []string
	now       func() time.Time
}

// NewTransactionUseCase construye el caso de uso. stores se usa cuando la
// petición no indica tiendas.
func NewTransactionUseCase(salesRepo repository.SalesRepository, stores []string) *TransactionUseCase {
	return &TransactionUseCase{salesRepo: salesRepo, stores: stores, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *TransactionUseCase) WithClock(now func() time.Time) *TransactionUseCase {
	uc.now = now
	return uc
}

// ListTransactions consulta cada tienda en paralelo, une los pedidos, los
// ordena por fecha descendente y marca los posibles duplicados. Las fechas
// vacías equivalen a hoy. La marca se calcula antes de filtrar y paginar.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, req dto.TransactionRequest) (*dto.TransactionListDTO, error) {
	now := uc.now()
	startStr, endStr := req.StartDate, req.EndDate
	today := now.Format(calendar.DateLayout)
	if startStr == "" {
		startStr = today
	}
	if endStr == "" {
		endStr = today
	}
	start, end, err := parsePeriod(startStr, endStr, "", now)
	if err != nil {
		return nil, err
	}

	stores := req.Stores
	if len(stores) == 0 {
		stores = uc.stores
	}

	type result struct {
		store string
		rows  []entity.Order
		err   error
	}
	ch := make(chan result, len(stores))
	for _, store := range stores {
		go func(store string) {
			rows, err := uc.salesRepo.ListOrders(ctx, store, start, end)
			ch <- result{store, rows, err}
		}(store)
	}

	var all []entity.Order
	var firstErr error
	for range stores {
		r := <-ch
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("transactions: pedidos de %s: %w", r.store, r.err)
			}
			continue
		}
		all = append(all, r.rows...)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	flagged := report.FlagSuspectedDuplicates(all, report.DuplicateWindow)
	items := make([]dto.TransactionDTO, 0, len(flagged))
	suspected := 0
	for _, f := range flagged {
		if f.SuspectedDuplicate {
			suspected++
		} else if req.OnlySuspicious {
			continue
		}
		items = append(items, dto.TransactionDTO{
			OrderID:            f.ID,
			StoreName:          f.StoreName,
			PhotoDetailType:    f.PhotoDetailType,
			TotalAmount:        f.TotalAmount,
			CreatedAt:          f.Timestamp(),
			SuspectedDuplicate: f.SuspectedDuplicate,
		})
	}

	page := req.Page
	page.DefaultPage()
	total := len(items)
	from, to := page.Window(total)

	return &dto.TransactionListDTO{
		Items:          items[from:to],
		SuspectedCount: suspected,
		Page:           dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}
