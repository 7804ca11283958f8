// Package db opens the optional Postgres database used for the report archive.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

const reportsSchema = `
CREATE TABLE IF NOT EXISTS reports (
	id           BIGSERIAL PRIMARY KEY,
	user_id      BIGINT NOT NULL,
	content      TEXT NOT NULL,
	generated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS reports_user_id_generated_at_idx ON reports (user_id, generated_at DESC);
`

// OpenPostgres opens a connection pool for dsn and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// EnsureSchema creates the report archive table if it does not exist.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, reportsSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
