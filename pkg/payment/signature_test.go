package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutSignature(t *testing.T) {
	sig := CheckoutSignature("secret", "order_abc123", "pay_xyz789")

	assert.Equal(t, sig, CheckoutSignature("secret", "order_abc123", "pay_xyz789"))
	assert.True(t, VerifyCheckoutSignature("secret", "order_abc123", "pay_xyz789", sig))

	assert.False(t, VerifyCheckoutSignature("other", "order_abc123", "pay_xyz789", sig))
	assert.False(t, VerifyCheckoutSignature("secret", "order_abc124", "pay_xyz789", sig))
	assert.False(t, VerifyCheckoutSignature("secret", "pay_xyz789", "order_abc123", sig))
	assert.False(t, VerifyCheckoutSignature("secret", "order_abc123", "pay_xyz789", ""))
}

func TestCheckoutSignature_PipeDelimited(t *testing.T) {
	// The signed message is orderID + "|" + paymentID.
	assert.Equal(t, CheckoutSignature("k", "a", "b"), WebhookSignature("k", []byte("a|b")))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	sig := WebhookSignature("whsec", body)

	assert.True(t, VerifyWebhookSignature("whsec", body, sig))
	assert.False(t, VerifyWebhookSignature("whsec", append(body, ' '), sig))
	assert.False(t, VerifyWebhookSignature("whsec", body, "deadbeef"))
}
