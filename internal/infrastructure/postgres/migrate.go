package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// versionTable tabla donde tern registra la última migración aplicada.
const versionTable = "schema_version"

// Migrate aplica migrations/NNN_*.sql pendientes con tern. Re-ejecutar sin migraciones nuevas no hace nada.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("adquirir conexión: %w", err)
	}
	defer conn.Release()

	m, err := migrate.NewMigrator(ctx, conn.Conn(), versionTable)
	if err != nil {
		return fmt.Errorf("crear migrador: %w", err)
	}
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("abrir migraciones: %w", err)
	}
	if err := m.LoadMigrations(sub); err != nil {
		return fmt.Errorf("cargar migraciones: %w", err)
	}
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
