package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transparify/transparify_backend/internal/apperrors"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_test_secret"
	gw := NewRazorpayGateway("rzp_test_key", "rzp_test_key_secret", secret)
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_ABC123"}}}}`)

	t.Run("Valid Signature", func(t *testing.T) {
		err := gw.VerifyWebhookSignature(body, signBody(secret, body))
		assert.NoError(t, err)
	})

	t.Run("Missing Signature", func(t *testing.T) {
		err := gw.VerifyWebhookSignature(body, "")
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		err := gw.VerifyWebhookSignature(body, signBody("other_secret", body))
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("Tampered Body", func(t *testing.T) {
		sig := signBody(secret, body)
		tampered := append([]byte(nil), body...)
		tampered[len(tampered)-2] = 'X'
		err := gw.VerifyWebhookSignature(tampered, sig)
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})
}
