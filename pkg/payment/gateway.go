package payment

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when the gateway credentials are absent.
	ErrNotConfigured = errors.New("payment gateway credentials are not configured")
	// ErrGateway wraps every transport or API failure from the gateway.
	ErrGateway = errors.New("payment gateway request failed")
)

// Gateway defines the operations needed from a hosted payment provider.
type Gateway interface {
	// CreateOrder registers an order for the given amount and returns the
	// provider's view of it. Amounts are always in minor units.
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

// OrderRequest is the input for Gateway.CreateOrder.
type OrderRequest struct {
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt,omitempty"`
	Notes    map[string]any `json:"notes,omitempty"`
}

// Order status constants as reported by Razorpay.
const (
	OrderStatusCreated   = "created"
	OrderStatusAttempted = "attempted"
	OrderStatusPaid      = "paid"
)

// Order is a gateway-side order. Only the fields this service reads are kept.
type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}
