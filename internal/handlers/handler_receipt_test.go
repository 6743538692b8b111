package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/dto"
	"github.com/transparify/transparify_backend/internal/handlers"
	"github.com/transparify/transparify_backend/internal/platform/config"
	"github.com/transparify/transparify_backend/internal/utils"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// ReceiptHandlerTestSuite covers the public receipt routes and the
// authenticated receipt issuance route.
type ReceiptHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockReceiptService *MockReceiptService
}

func (suite *ReceiptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockReceiptService = new(MockReceiptService)

	cfg := &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "transparify-test",
		IsProduction:      true,
	}
	services := &portssvc.ServiceContainer{
		Transaction:  new(MockTransactionService),
		Campaign:     new(MockCampaignService),
		Receipt:      suite.mockReceiptService,
		Transparency: new(MockTransparencyService),
		User:         new(MockUserService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services, new(MockPaymentGateway))
}

func (suite *ReceiptHandlerTestSuite) generateTestToken(userID, email string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, email, string(role), testJWTSecret, time.Hour, "transparify-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ReceiptHandlerTestSuite) TestVerifyReceiptIsPublic() {
	token := "DON-8812349071226643"
	suite.mockReceiptService.On("VerifyReceipt", mock.Anything, token).
		Return(&dto.VerifyReceiptResponse{VerificationStatus: "valid"}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/receipts/"+token+"/verify", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VerifyReceiptResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("valid", resp.VerificationStatus)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestVerifyUnknownReceiptIsStillOK() {
	token := "DON-0000000000000000"
	suite.mockReceiptService.On("VerifyReceipt", mock.Anything, token).
		Return(&dto.VerifyReceiptResponse{VerificationStatus: "invalid", Message: "No donation matches this receipt"}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/receipts/"+token+"/verify", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VerifyReceiptResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("invalid", resp.VerificationStatus)
}

func (suite *ReceiptHandlerTestSuite) TestGetReceiptPDFNotReady() {
	token := "DON-8812349071226643"
	suite.mockReceiptService.On("GetReceiptPDF", mock.Anything, token).
		Return(nil, apperrors.ErrNotReady).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/receipts/"+token+"/pdf", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "not been generated")
}

func (suite *ReceiptHandlerTestSuite) TestIssueReceiptRequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/transactions/txn-1/receipt", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReceiptService.AssertNotCalled(suite.T(), "IssueReceipt")
}

func (suite *ReceiptHandlerTestSuite) TestIssueReceiptReturnsLink() {
	expected := &dto.ReceiptIssueResponse{ReceiptLink: "https://receipts.example.org/pdf/DON-8812349071226643.pdf"}
	suite.mockReceiptService.On("IssueReceipt", mock.Anything, "txn-1").
		Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/transactions/txn-1/receipt", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "donor@example.org", domain.RoleDonor))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReceiptIssueResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ReceiptLink, resp.ReceiptLink)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestIssueReceiptPendingPayment() {
	suite.mockReceiptService.On("IssueReceipt", mock.Anything, "txn-pending").
		Return(nil, apperrors.ErrNotReady).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/transactions/txn-pending/receipt", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "donor@example.org", domain.RoleDonor))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "not confirmed")
}

func TestReceiptHandler(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}
