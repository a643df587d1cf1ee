package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 5
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// RunMigrations creates the audit table.
func RunMigrations(ctx context.Context, db DBPool) error {
	query := `
		CREATE TABLE IF NOT EXISTS payment_audit (
			id          BIGSERIAL PRIMARY KEY,
			payment_id  TEXT NOT NULL,
			order_id    TEXT NOT NULL,
			plan        TEXT NOT NULL,
			amount_inr  DOUBLE PRECISION,
			source      TEXT NOT NULL,
			verified_at TIMESTAMPTZ NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_payment_audit_verified_at ON payment_audit(verified_at DESC);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_audit_payment_source ON payment_audit(payment_id, source);
	`
	_, err := db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
