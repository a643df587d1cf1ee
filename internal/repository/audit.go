package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kr1119/portfolio-backend/internal/domain"
)

// DBPool is the subset of *pgxpool.Pool the repositories use.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// AuditRepository stores verified payments for reconciliation.
type AuditRepository struct {
	db DBPool
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db DBPool) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record inserts one audit row. A payment already recorded from the same
// source is left as is, so gateway redeliveries are harmless.
func (r *AuditRepository) Record(ctx context.Context, rec domain.PaymentRecord) error {
	query := `
		INSERT INTO payment_audit (payment_id, order_id, plan, amount_inr, source, verified_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (payment_id, source) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		rec.PaymentID, rec.OrderID, rec.Plan, rec.Amount, rec.Source, rec.VerifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.PaymentRecord, error) {
	query := `
		SELECT payment_id, order_id, plan, amount_inr, source, verified_at
		FROM payment_audit ORDER BY verified_at DESC, id DESC LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PaymentRecord, 0, limit)
	for rows.Next() {
		var rec domain.PaymentRecord
		if err := rows.Scan(&rec.PaymentID, &rec.OrderID, &rec.Plan, &rec.Amount, &rec.Source, &rec.VerifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit records: %w", err)
	}
	return records, nil
}

// Ping checks the database connection.
func (r *AuditRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
