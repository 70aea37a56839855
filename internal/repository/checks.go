// Package repository provides the PostgreSQL persistence for the check audit log.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/pwncheck/internal/models"
)

// PostgresCheckRepository stores check audit records in PostgreSQL.
type PostgresCheckRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCheckRepository creates a new PostgresCheckRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresCheckRepository(db *sql.DB) *PostgresCheckRepository {
	return &PostgresCheckRepository{DB: db}
}

// RecordCheck inserts a single audit record.
func (r *PostgresCheckRepository) RecordCheck(ctx context.Context, rec models.CheckRecord) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO checks (id, pwned, count, checked_at) VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.Pwned, rec.Count, rec.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("RecordCheck: %w", err)
	}
	return nil
}

// Stats counts all records and the pwned ones among them.
func (r *PostgresCheckRepository) Stats(ctx context.Context) (models.Stats, error) {
	var st models.Stats
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE pwned) FROM checks
	`).Scan(&st.Total, &st.Pwned)
	if err != nil {
		return models.Stats{}, fmt.Errorf("Stats: %w", err)
	}
	return st, nil
}
