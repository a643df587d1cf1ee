package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/pkg/payment"
)

// OrderService creates gateway orders at server-side prices.
type OrderService struct {
	catalog  *domain.Catalog
	gateway  payment.Gateway
	validate *validator.Validate
	log      *slog.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(catalog *domain.Catalog, gateway payment.Gateway, log *slog.Logger) *OrderService {
	return &OrderService{
		catalog:  catalog,
		gateway:  gateway,
		validate: newValidator(catalog),
		log:      log,
	}
}

// CreateOrder resolves the plan price and asks the gateway for an order.
// The client never supplies an amount.
func (s *OrderService) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrBadRequest(domain.MsgInvalidPlan)
	}

	plan, ok := s.catalog.Lookup(req.Plan)
	if !ok {
		return nil, domain.ErrBadRequest(domain.MsgInvalidPlan)
	}

	order, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
		Amount:   plan.AmountPaise(),
		Currency: domain.Currency,
		Receipt:  newReceipt(),
		Notes: map[string]any{
			"plan":       string(plan.Name),
			"amount_inr": plan.PriceINR,
		},
	})
	switch {
	case errors.Is(err, payment.ErrNotConfigured):
		s.log.ErrorContext(ctx, "payment gateway credentials missing; set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET")
		return nil, domain.ErrInternal(domain.MsgNotConfigured, err)
	case err != nil:
		s.log.ErrorContext(ctx, "gateway order creation failed",
			slog.String("plan", string(plan.Name)),
			slog.Any("error", err),
		)
		return nil, domain.ErrInternal(domain.MsgCreateOrderFailed, err)
	}

	s.log.InfoContext(ctx, "order created",
		slog.String("orderId", order.ID),
		slog.String("plan", string(plan.Name)),
		slog.Int64("amount", order.Amount),
	)

	return &domain.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

// newReceipt returns a receipt id within Razorpay's 40 character limit.
func newReceipt() string {
	return "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
