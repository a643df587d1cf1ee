package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignHex returns the hex-encoded HMAC-SHA256 of message under key.
func SignHex(key, message []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// EqualHex compares two hex digests in constant time.
func EqualHex(got, want string) bool {
	return hmac.Equal([]byte(got), []byte(want))
}

// VerifyHex reports whether signature is the HMAC-SHA256 of message under key.
func VerifyHex(key, message []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return EqualHex(signature, SignHex(key, message))
}
