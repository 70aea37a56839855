// Package db opens the PostgreSQL audit database and keeps it trimmed.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS checks (
    id TEXT PRIMARY KEY,
    pwned BOOLEAN NOT NULL,
    count BIGINT NOT NULL,
    checked_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS checks_checked_at_idx ON checks (checked_at);
`

// InitPostgres opens dsn, verifies the connection and creates the schema.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
