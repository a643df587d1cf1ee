package payment

import (
	"github.com/kr1119/portfolio-backend/pkg/crypto"
)

// checkoutMessage is the canonical message Razorpay signs after checkout.
// Both ids are gateway-issued tokens, so no escaping is needed.
func checkoutMessage(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// CheckoutSignature returns the hex signature Razorpay hands to the browser
// for a completed checkout of orderID with paymentID.
func CheckoutSignature(secret, orderID, paymentID string) string {
	return crypto.SignHex([]byte(secret), checkoutMessage(orderID, paymentID))
}

// VerifyCheckoutSignature checks a client-supplied checkout signature.
func VerifyCheckoutSignature(secret, orderID, paymentID, signature string) bool {
	return crypto.VerifyHex([]byte(secret), checkoutMessage(orderID, paymentID), signature)
}

// WebhookSignature returns the X-Razorpay-Signature value for a raw body.
func WebhookSignature(secret string, body []byte) string {
	return crypto.SignHex([]byte(secret), body)
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header of a webhook.
func VerifyWebhookSignature(secret string, body []byte, signature string) bool {
	return crypto.VerifyHex([]byte(secret), body, signature)
}
