package database

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver for goose
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies the embedded schema migrations. goose needs a
// database/sql handle, so it gets its own short-lived connection rather
// than the pgx pool.
func RunMigrations(ctx context.Context, connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}
