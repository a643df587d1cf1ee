package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kr1119/portfolio-backend/internal/domain"
)

// AuditSink receives a record for every verified payment.
type AuditSink interface {
	Record(ctx context.Context, rec domain.PaymentRecord) error
}

// LogAuditSink writes audit records to the structured log.
type LogAuditSink struct {
	log *slog.Logger
}

// NewLogAuditSink creates a sink backed by log.
func NewLogAuditSink(log *slog.Logger) *LogAuditSink {
	return &LogAuditSink{log: log}
}

func (s *LogAuditSink) Record(ctx context.Context, rec domain.PaymentRecord) error {
	amount := any("unknown")
	if rec.Amount != nil {
		amount = *rec.Amount
	}
	s.log.InfoContext(ctx, "payment verified",
		slog.Group("audit",
			slog.String("paymentId", rec.PaymentID),
			slog.String("orderId", rec.OrderID),
			slog.String("plan", rec.Plan),
			slog.Any("amount", amount),
			slog.String("source", rec.Source),
			slog.String("timestamp", rec.VerifiedAt.UTC().Format(time.RFC3339Nano)),
		),
	)
	return nil
}

// MultiSink fans a record out to every sink and joins their errors.
type MultiSink []AuditSink

func (m MultiSink) Record(ctx context.Context, rec domain.PaymentRecord) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
