package handlers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/handlers"
	"github.com/transparify/transparify_backend/internal/platform/config"
	"github.com/transparify/transparify_backend/internal/platform/payment"
)

const webhookTestSecret = "whsec_test_0123456789"

// WebhookHandlerTestSuite wires the webhook route with the real signature
// verifier so the raw body HMAC check is exercised end to end.
type WebhookHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
}

func (suite *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockTransactionService = new(MockTransactionService)

	gateway := payment.NewRazorpayGateway("rzp_test_key", "rzp_test_secret", webhookTestSecret)

	cfg := &config.Config{JWTSecret: "test-secret-key-that-is-long-enough", IsProduction: true}
	services := &portssvc.ServiceContainer{
		Transaction:  suite.mockTransactionService,
		Campaign:     new(MockCampaignService),
		Receipt:      new(MockReceiptService),
		Transparency: new(MockTransparencyService),
		User:         new(MockUserService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services, gateway)
}

func (suite *WebhookHandlerTestSuite) signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookTestSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (suite *WebhookHandlerTestSuite) capturedEventBody(providerRef string) []byte {
	return []byte(fmt.Sprintf(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"%s","status":"captured"}}}}`, providerRef))
}

func (suite *WebhookHandlerTestSuite) postWebhook(body []byte, signature string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/payments/webhook/razorpay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Razorpay-Signature", signature)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WebhookHandlerTestSuite) TestCapturedEventConfirmsTransaction() {
	providerRef := "pay_NXhT4qrALBr2qS"
	body := suite.capturedEventBody(providerRef)

	confirmed := &domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.Financial,
		Status:        domain.Completed,
		Amount:        decimal.NewFromInt(2500),
		ProviderRef:   providerRef,
	}
	suite.mockTransactionService.On("ConfirmPaymentCapture", mock.Anything, providerRef).
		Return(confirmed, nil).Once()

	w := suite.postWebhook(body, suite.signBody(body))

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ok", resp["status"])
	suite.Equal("txn-1", resp["transaction_id"])
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *WebhookHandlerTestSuite) TestMissingSignatureRejected() {
	body := suite.capturedEventBody("pay_NXhT4qrALBr2qS")

	w := suite.postWebhook(body, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ConfirmPaymentCapture")
}

func (suite *WebhookHandlerTestSuite) TestTamperedBodyRejected() {
	body := suite.capturedEventBody("pay_NXhT4qrALBr2qS")
	signature := suite.signBody(body)
	tampered := bytes.Replace(body, []byte("pay_NXhT4qrALBr2qS"), []byte("pay_attacker000000"), 1)

	w := suite.postWebhook(tampered, signature)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ConfirmPaymentCapture")
}

func (suite *WebhookHandlerTestSuite) TestUnhandledEventIgnored() {
	body := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_NXhT4qrALBr2qS","status":"failed"}}}}`)

	w := suite.postWebhook(body, suite.signBody(body))

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ignored", resp["status"])
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ConfirmPaymentCapture")
}

func (suite *WebhookHandlerTestSuite) TestUnknownPaymentReferenceReturns404() {
	providerRef := "pay_unknown0000000"
	body := suite.capturedEventBody(providerRef)

	suite.mockTransactionService.On("ConfirmPaymentCapture", mock.Anything, providerRef).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postWebhook(body, suite.signBody(body))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *WebhookHandlerTestSuite) TestRedeliveryIsNoOpSuccess() {
	providerRef := "pay_NXhT4qrALBr2qS"
	body := suite.capturedEventBody(providerRef)

	alreadyCompleted := &domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.Financial,
		Status:        domain.Completed,
		Amount:        decimal.NewFromInt(2500),
		ProviderRef:   providerRef,
	}
	suite.mockTransactionService.On("ConfirmPaymentCapture", mock.Anything, providerRef).
		Return(alreadyCompleted, nil).Twice()

	first := suite.postWebhook(body, suite.signBody(body))
	second := suite.postWebhook(body, suite.signBody(body))

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal(http.StatusOK, second.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func TestWebhookHandler(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}
