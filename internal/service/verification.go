package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/pkg/payment"
)

const auditTimeout = 5 * time.Second

// VerificationService checks checkout signatures issued by the gateway.
type VerificationService struct {
	secret   string
	audit    AuditSink
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time

	wg sync.WaitGroup
}

// NewVerificationService creates a VerificationService. secret is the
// gateway key secret; an empty secret makes every verification fail with a
// server error.
func NewVerificationService(secret string, audit AuditSink, log *slog.Logger) *VerificationService {
	return &VerificationService{
		secret:   secret,
		audit:    audit,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
		now:      time.Now,
	}
}

// Verify checks req against the expected signature. A mismatch is a normal
// outcome and is reported through the response, not as an error.
func (s *VerificationService) Verify(ctx context.Context, req *domain.VerifyPaymentRequest) (*domain.VerifyPaymentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrBadRequest(domain.MsgMissingPaymentDetails)
	}

	if s.secret == "" {
		s.log.ErrorContext(ctx, "payment verification attempted without RAZORPAY_KEY_SECRET")
		return nil, domain.ErrInternal(domain.MsgVerificationFailed, payment.ErrNotConfigured)
	}

	if !payment.VerifyCheckoutSignature(s.secret, req.OrderID, req.PaymentID, req.Signature) {
		s.log.WarnContext(ctx, "payment verification failed",
			slog.String("orderId", req.OrderID),
			slog.String("paymentId", req.PaymentID),
		)
		return &domain.VerifyPaymentResponse{
			Verified: false,
			Error:    domain.MsgInvalidSignature,
		}, nil
	}

	plan := req.Plan
	if plan == "" {
		plan = "unknown"
	}
	s.recordAsync(ctx, domain.PaymentRecord{
		PaymentID:  req.PaymentID,
		OrderID:    req.OrderID,
		Plan:       plan,
		Amount:     req.Amount,
		Source:     domain.SourceCheckout,
		VerifiedAt: s.now().UTC(),
	})

	return &domain.VerifyPaymentResponse{
		Verified:  true,
		PaymentID: req.PaymentID,
	}, nil
}

// recordAsync hands rec to the audit sink without blocking the caller.
// Failures are logged and dropped.
func (s *VerificationService) recordAsync(ctx context.Context, rec domain.PaymentRecord) {
	if s.audit == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.ErrorContext(ctx, "audit sink panicked", slog.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, auditTimeout)
		defer cancel()

		if err := s.audit.Record(ctx, rec); err != nil {
			s.log.ErrorContext(ctx, "failed to record verified payment",
				slog.String("paymentId", rec.PaymentID),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until all pending audit writes have finished.
func (s *VerificationService) Wait() {
	s.wg.Wait()
}
