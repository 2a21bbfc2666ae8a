package db

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"

	apperrors "mouldflow/internal/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations embedded in the binary.
func Migrate(conn *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return apperrors.Storage("set goose dialect", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return apperrors.Storage("apply migrations", err)
	}
	return nil
}
