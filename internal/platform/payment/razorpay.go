package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
)

// RazorpayGateway implements gateways.PaymentGateway against the Razorpay API.
type RazorpayGateway struct {
	client        *razorpay.Client
	webhookSecret string
}

var _ gateways.PaymentGateway = (*RazorpayGateway)(nil)

// NewRazorpayGateway creates a gateway with the given API credentials.
func NewRazorpayGateway(keyID, keySecret, webhookSecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:        razorpay.NewClient(keyID, keySecret),
		webhookSecret: webhookSecret,
	}
}

// FetchPayment retrieves the payment's current state from Razorpay.
func (g *RazorpayGateway) FetchPayment(ctx context.Context, providerRef string) (*gateways.PaymentCapture, error) {
	body, err := g.client.Payment.Fetch(providerRef, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment %s: %w", providerRef, err)
	}

	capture := &gateways.PaymentCapture{ProviderRef: providerRef}
	if status, ok := body["status"].(string); ok {
		capture.Status = status
	}
	if amount, ok := body["amount"].(float64); ok {
		capture.AmountPaise = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		capture.Currency = currency
	}
	if method, ok := body["method"].(string); ok {
		capture.Method = method
	}
	if email, ok := body["email"].(string); ok {
		capture.Email = email
	}
	return capture, nil
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header value against
// an HMAC-SHA256 of the raw request body. Comparison is constant time.
func (g *RazorpayGateway) VerifyWebhookSignature(rawBody []byte, signature string) error {
	if signature == "" {
		return apperrors.ErrAuthentication
	}
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperrors.ErrAuthentication
	}
	return nil
}
