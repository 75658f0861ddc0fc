// seed carga pedidos desde un archivo JSON (el mismo formato que devuelve
// /orders/search?summary=false) en la tabla orders.
//
// Uso: go run ./cmd/seed [ruta/orders.json]
// Por defecto busca orders.json en el directorio actual. Aplica las migraciones
// antes de insertar; los pedidos ya cargados se cuentan como duplicados.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/jhoicas/kiosk-sales/internal/domain"
	"github.com/jhoicas/kiosk-sales/internal/domain/repository"
	"github.com/jhoicas/kiosk-sales/internal/infrastructure/postgres"
	"github.com/jhoicas/kiosk-sales/internal/infrastructure/salesapi"
	"github.com/jhoicas/kiosk-sales/pkg/config"
	"github.com/jhoicas/kiosk-sales/pkg/logger"
)

// batchSize pedidos por transacción.
const batchSize = 500

func main() {
	path := "orders.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("leer archivo de pedidos")
	}
	orders, err := salesapi.DecodeOrders(raw)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("decodificar pedidos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("scripts", applied).Msg("migraciones aplicadas")

	runner := postgres.NewTxRunner(pool)
	bar := progressbar.Default(int64(len(orders)), "cargando pedidos")

	var inserted, duplicates, failed int
	for from := 0; from < len(orders); from += batchSize {
		batch := orders[from:min(from+batchSize, len(orders))]
		err := runner.Run(ctx, func(w repository.OrderWriter) error {
			for _, o := range batch {
				switch err := w.InsertOrder(ctx, o); {
				case err == nil:
					inserted++
				case errors.Is(err, domain.ErrDuplicate):
					duplicates++
				case errors.Is(err, domain.ErrInvalidInput):
					failed++
					log.Warn().Err(err).Str("order_id", o.ID).Str("store", o.StoreName).Msg("pedido omitido")
				default:
					return err
				}
				_ = bar.Add(1)
			}
			return nil
		})
		if err != nil {
			_ = bar.Exit()
			log.Fatal().Err(err).Int("batch_start", from).Msg("lote revertido")
		}
	}
	_ = bar.Finish()

	log.Info().
		Int("total", len(orders)).
		Int("inserted", inserted).
		Int("duplicates", duplicates).
		Int("failed", failed).
		Msg("carga terminada")
	if failed > 0 {
		os.Exit(1)
	}
}
