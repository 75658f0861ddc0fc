package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/kiosk-sales/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DailyReportUC *appanalytics.DailyReportUseCase
	SalesUC       *appanalytics.SalesSummaryUseCase
	TransactionUC *appanalytics.TransactionUseCase
	JWTSecret     string // vacío = rutas públicas
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	reportHandler := NewReportHandler(deps.DailyReportUC)
	reports := api.Group("/reports")
	reports.Get("/daily", reportHandler.GetDaily)
	reports.Get("/daily/export", reportHandler.ExportDaily)

	salesHandler := NewSalesHandler(deps.SalesUC)
	sales := api.Group("/sales")
	sales.Get("/today", salesHandler.GetToday)
	sales.Get("/period", salesHandler.GetPeriod)
	api.Get("/stores", salesHandler.ListStores)

	txHandler := NewTransactionHandler(deps.TransactionUC)
	api.Get("/transactions", txHandler.List)
}
