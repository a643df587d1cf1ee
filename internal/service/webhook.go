package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/pkg/payment"
)

// Webhook outcomes reported back to the gateway.
const (
	WebhookRecorded = "recorded"
	WebhookIgnored  = "ignored"
)

// WebhookService handles server-to-server notifications from the gateway.
type WebhookService struct {
	secret string
	audit  AuditSink
	log    *slog.Logger
	now    func() time.Time
}

// NewWebhookService creates a WebhookService. An empty secret disables it.
func NewWebhookService(secret string, audit AuditSink, log *slog.Logger) *WebhookService {
	return &WebhookService{
		secret: secret,
		audit:  audit,
		log:    log,
		now:    time.Now,
	}
}

// Handle authenticates and processes a raw webhook body. Unlike checkout
// verification the audit write is synchronous, so a failed write makes the
// gateway redeliver. Sinks must treat a repeated payment id as a no-op.
func (s *WebhookService) Handle(ctx context.Context, body []byte, signature string) (string, error) {
	if s.secret == "" {
		s.log.ErrorContext(ctx, "webhook received but RAZORPAY_WEBHOOK_SECRET is not set")
		return "", domain.ErrInternal(domain.MsgNotConfigured, payment.ErrNotConfigured)
	}

	if !payment.VerifyWebhookSignature(s.secret, body, signature) {
		s.log.WarnContext(ctx, "webhook signature mismatch")
		return "", domain.ErrUnauthorized(domain.MsgInvalidSignature)
	}

	ev, err := payment.ParseWebhookEvent(body)
	if err != nil {
		return "", domain.ErrBadRequest(domain.MsgInvalidJSON)
	}

	// order.paid is always preceded by payment.captured for the same
	// payment, so only the capture is recorded.
	if ev.Event != payment.EventPaymentCaptured {
		s.log.DebugContext(ctx, "webhook event ignored", slog.String("event", ev.Event))
		return WebhookIgnored, nil
	}

	p, ok := ev.Payment()
	if !ok {
		s.log.WarnContext(ctx, "webhook event without payment entity", slog.String("event", ev.Event))
		return WebhookIgnored, nil
	}

	plan := p.Note("plan")
	if plan == "" {
		plan = "unknown"
	}
	rupees := float64(p.Amount) / 100

	rec := domain.PaymentRecord{
		PaymentID:  p.ID,
		OrderID:    p.OrderID,
		Plan:       plan,
		Amount:     &rupees,
		Source:     domain.SourceWebhook,
		VerifiedAt: s.now().UTC(),
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		s.log.ErrorContext(ctx, "failed to record webhook payment",
			slog.String("paymentId", rec.PaymentID),
			slog.Any("error", err),
		)
		return "", domain.ErrInternal("failed to record event", err)
	}
	return WebhookRecorded, nil
}
