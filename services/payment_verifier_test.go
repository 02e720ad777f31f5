package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify_AcceptsValidSignature(t *testing.T) {
	v := NewPaymentVerifier("test-secret")
	sig := signPayload("test-secret", "order_123", "pay_456")

	assert.True(t, v.Verify("order_123", "pay_456", sig))
}

func TestVerify_RejectsTamperedSignature(t *testing.T) {
	v := NewPaymentVerifier("test-secret")
	sig := signPayload("test-secret", "order_123", "pay_456")

	assert.False(t, v.Verify("order_123", "pay_456", sig+"00"))
	assert.False(t, v.Verify("order_123", "pay_999", sig))
	assert.False(t, v.Verify("order_123", "pay_456", ""))
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	v := NewPaymentVerifier("test-secret")
	sig := signPayload("other-secret", "order_123", "pay_456")

	assert.False(t, v.Verify("order_123", "pay_456", sig))
}
