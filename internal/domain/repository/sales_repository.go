package repository

import (
	"context"
	"time"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// SalesRepository puerto de lectura de la fuente de ventas (DIP).
// Lo implementan el adaptador PostgreSQL y el cliente de la API remota.
// storeName vacío significa "todas las tiendas".
type SalesRepository interface {
	// ListMonthlyRecords devuelve una fila por tienda y photo_detail_type del mes,
	// con las ventas diarias, el total acumulado y la proyección a mes completo.
	ListMonthlyRecords(ctx context.Context, year, month int, storeName string) ([]entity.SalesRecord, error)

	// ListMonthlyTrend devuelve el total por tienda de los 12 meses que terminan en
	// (year, month) e incluye (year-1, month), base del YoY.
	ListMonthlyTrend(ctx context.Context, year, month int) ([]entity.TrendRecord, error)

	// ListDailyTotals devuelve ventas y número de pedidos por día entre start y end (inclusive).
	ListDailyTotals(ctx context.Context, storeName string, start, end time.Time) ([]entity.DailyTotal, error)

	// ListOrders devuelve los pedidos individuales entre start y end (inclusive).
	ListOrders(ctx context.Context, storeName string, start, end time.Time) ([]entity.Order, error)
}

// OrderWriter puerto de escritura usado por la carga inicial de datos.
type OrderWriter interface {
	// InsertOrder devuelve domain.ErrDuplicate si el pedido ya existe.
	InsertOrder(ctx context.Context, order entity.Order) error
}
