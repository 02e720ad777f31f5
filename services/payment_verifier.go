package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// PaymentVerifier checks the gateway callback signature. It must run, and
// must reject, before any cart or inventory mutation happens.
type PaymentVerifier struct {
	secret []byte
}

func NewPaymentVerifier(secret string) *PaymentVerifier {
	return &PaymentVerifier{secret: []byte(secret)}
}

// Verify recomputes hex(HMAC-SHA256(orderID + "|" + paymentID)) with the
// pre-shared secret and compares it against the provided signature in
// constant time.
func (v *PaymentVerifier) Verify(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
