// Package db persists projects, parts, analyses and reports in SQLite.
// Analysis results are stored verbatim as JSON: the engine's output is
// the record of truth and is never recomputed on read.
package db

import (
	"database/sql"

	_ "modernc.org/sqlite"

	apperrors "mouldflow/internal/errors"
)

// Open opens a SQLite database, sets the pragmas the store relies on,
// and validates connectivity.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.Storage("open sqlite database", err)
	}

	if _, err := conn.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		conn.Close()
		return nil, apperrors.Storage("set sqlite pragmas", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, apperrors.Storage("ping sqlite database", err)
	}

	return conn, nil
}
