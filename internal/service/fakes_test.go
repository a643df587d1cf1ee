package service

import (
	"context"
	"sync"

	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/pkg/payment"
)

type fakeGateway struct {
	mu    sync.Mutex
	calls []payment.OrderRequest
	order *payment.Order
	err   error
}

func (g *fakeGateway) CreateOrder(ctx context.Context, req payment.OrderRequest) (*payment.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	if g.order != nil {
		return g.order, nil
	}
	return &payment.Order{
		ID:       "order_abc123",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   payment.OrderStatusCreated,
	}, nil
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type fakeSink struct {
	mu      sync.Mutex
	records []domain.PaymentRecord
	err     error
	panics  bool
}

func (s *fakeSink) Record(ctx context.Context, rec domain.PaymentRecord) error {
	if s.panics {
		panic("sink exploded")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return s.err
}

func (s *fakeSink) all() []domain.PaymentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.PaymentRecord(nil), s.records...)
}
