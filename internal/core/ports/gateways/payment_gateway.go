package gateways

import "context"

// PaymentCapture describes the state of a payment as reported by the provider.
type PaymentCapture struct {
	ProviderRef string
	Status      string
	AmountPaise int64
	Currency    string
	Method      string
	Email       string
}

// Captured reports whether the provider considers the payment collected.
func (p PaymentCapture) Captured() bool {
	return p.Status == "captured"
}

// PaymentGateway abstracts the payment provider used for financial donations.
type PaymentGateway interface {
	// FetchPayment retrieves the current state of a payment from the provider.
	FetchPayment(ctx context.Context, providerRef string) (*PaymentCapture, error)

	// VerifyWebhookSignature checks the provider's signature over the raw
	// webhook body. It returns ErrAuthentication when the signature is missing
	// or does not match.
	VerifyWebhookSignature(rawBody []byte, signature string) error
}
