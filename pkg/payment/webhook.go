package payment

import (
	"encoding/json"
	"fmt"
)

// Webhook events Razorpay sends for a completed checkout.
const (
	EventPaymentCaptured = "payment.captured"
	EventOrderPaid       = "order.paid"
)

// WebhookEvent is the envelope Razorpay posts to the webhook URL.
type WebhookEvent struct {
	Entity    string `json:"entity"`
	AccountID string `json:"account_id"`
	Event     string `json:"event"`
	CreatedAt int64  `json:"created_at"`
	Payload   struct {
		Payment *struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// PaymentEntity is the payment object embedded in webhook payloads.
type PaymentEntity struct {
	ID       string          `json:"id"`
	OrderID  string          `json:"order_id"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
	Notes    json.RawMessage `json:"notes"`
}

// Note returns a string note. Razorpay sends notes as an object, or as an
// empty array when there are none.
func (p PaymentEntity) Note(key string) string {
	var notes map[string]any
	if err := json.Unmarshal(p.Notes, &notes); err != nil {
		return ""
	}
	switch v := notes[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ParseWebhookEvent decodes a webhook body.
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var ev WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("decode webhook event: %w", err)
	}
	if ev.Event == "" {
		return nil, fmt.Errorf("decode webhook event: missing event name")
	}
	return &ev, nil
}

// Payment returns the embedded payment entity, if the event carries one.
func (e *WebhookEvent) Payment() (PaymentEntity, bool) {
	if e.Payload.Payment == nil || e.Payload.Payment.Entity.ID == "" {
		return PaymentEntity{}, false
	}
	return e.Payload.Payment.Entity, true
}
