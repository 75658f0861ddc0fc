package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica los scripts de migrations/ en orden de nombre. Los scripts
// son idempotentes (IF NOT EXISTS), así que se pueden ejecutar en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("migrate: listar scripts: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("migrate: leer %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return nil, fmt.Errorf("migrate: ejecutar %s: %w", name, err)
		}
	}
	return names, nil
}
