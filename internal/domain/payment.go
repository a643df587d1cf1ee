package domain

import "time"

// CreateOrderRequest is the body of POST /api/create-order.
type CreateOrderRequest struct {
	Plan string `json:"plan" validate:"plan"`
}

// CreateOrderResponse is returned once the gateway has created the order.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // paise, as echoed by the gateway
	Currency string `json:"currency"`
}

// VerifyPaymentRequest is the body of POST /api/verify-payment. Plan and
// Amount come from the browser and are only ever logged.
type VerifyPaymentRequest struct {
	OrderID   string   `json:"razorpay_order_id" validate:"required"`
	PaymentID string   `json:"razorpay_payment_id" validate:"required"`
	Signature string   `json:"razorpay_signature" validate:"required"`
	Plan      string   `json:"plan,omitempty"`
	Amount    *float64 `json:"amount,omitempty"` // rupees
}

// VerifyPaymentResponse reports the verification outcome.
type VerifyPaymentResponse struct {
	Verified  bool   `json:"verified"`
	PaymentID string `json:"paymentId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Audit record sources.
const (
	SourceCheckout = "checkout"
	SourceWebhook  = "webhook"
)

// PaymentRecord is the audit entry written for every verified payment.
type PaymentRecord struct {
	PaymentID  string    `json:"paymentId"`
	OrderID    string    `json:"orderId"`
	Plan       string    `json:"plan"`
	Amount     *float64  `json:"amount"` // rupees; nil when unknown
	Source     string    `json:"source"`
	VerifiedAt time.Time `json:"verifiedAt"`
}
