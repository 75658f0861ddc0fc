package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	appanalytics "github.com/jhoicas/kiosk-sales/internal/application/analytics"
	"github.com/jhoicas/kiosk-sales/internal/domain/report"
	"github.com/jhoicas/kiosk-sales/internal/domain/repository"
	"github.com/jhoicas/kiosk-sales/internal/infrastructure/postgres"
	"github.com/jhoicas/kiosk-sales/internal/infrastructure/salesapi"
	"github.com/jhoicas/kiosk-sales/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/kiosk-sales/internal/interfaces/http"
	"github.com/jhoicas/kiosk-sales/pkg/config"
	"github.com/jhoicas/kiosk-sales/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("sales_source", cfg.Sales.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Fuente de ventas: PostgreSQL propio o la API remota de pedidos.
	var salesRepo repository.SalesRepository
	switch cfg.Sales.Source {
	case config.SourceAPI:
		salesRepo = salesapi.NewClient(cfg.Sales.APIBaseURL, cfg.Sales.APITimeout)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		salesRepo = postgres.NewSalesRepository(pool, nil)
	}

	locale, err := language.Parse(cfg.Report.Locale)
	if err != nil {
		log.Warn().Err(err).Str("locale", cfg.Report.Locale).Msg("REPORT_LOCALE inválido, se usa el idioma por defecto")
		locale = report.DefaultLocale
	}

	dailyReportUC := appanalytics.NewDailyReportUseCase(salesRepo, xlsx.NewReportExporter(), locale, log)
	salesUC := appanalytics.NewSalesSummaryUseCase(salesRepo, cfg.Report.Stores)
	transactionUC := appanalytics.NewTransactionUseCase(salesRepo, cfg.Report.Stores)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kiosk Sales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: las rutas /api son públicas")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		DailyReportUC: dailyReportUC,
		SalesUC:       salesUC,
		TransactionUC: transactionUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
