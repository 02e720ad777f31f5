package services

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// GatewayPayment is a captured payment as reported by the gateway.
// Amount is in the smallest currency unit (paise).
type GatewayPayment struct {
	ID       string
	Amount   int
	Currency string
	Status   string
}

// GatewayOrder is a payment intent created at the gateway.
type GatewayOrder struct {
	ID       string
	Amount   int
	Currency string
	Receipt  string
}

// GatewayRefund is the gateway's acknowledgement of a refund.
type GatewayRefund struct {
	ID     string
	Status string
}

// PaymentGateway is the synchronous surface of the external payment
// provider. Amounts cross this boundary in the smallest currency unit.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int, currency, receipt string) (*GatewayOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
	RefundPayment(ctx context.Context, paymentID string, amount int) (*GatewayRefund, error)
}

// RazorpayGateway implements PaymentGateway over the Razorpay SDK.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, amount int, currency, receipt string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create failed: %w", err)
	}
	return &GatewayOrder{
		ID:       asString(body["id"]),
		Amount:   asInt(body["amount"]),
		Currency: asString(body["currency"]),
		Receipt:  asString(body["receipt"]),
	}, nil
}

func (g *RazorpayGateway) FetchPayment(_ context.Context, paymentID string) (*GatewayPayment, error) {
	body, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay payment fetch failed: %w", err)
	}
	return &GatewayPayment{
		ID:       asString(body["id"]),
		Amount:   asInt(body["amount"]),
		Currency: asString(body["currency"]),
		Status:   asString(body["status"]),
	}, nil
}

func (g *RazorpayGateway) RefundPayment(_ context.Context, paymentID string, amount int) (*GatewayRefund, error) {
	body, err := g.client.Payment.Refund(paymentID, amount, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay refund failed: %w", err)
	}
	return &GatewayRefund{
		ID:     asString(body["id"]),
		Status: asString(body["status"]),
	}, nil
}

// The Razorpay SDK returns untyped JSON maps; numbers arrive as float64.
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}
