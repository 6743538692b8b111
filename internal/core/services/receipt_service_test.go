package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/core/services"
)

func completedFinancialTxn() *domain.Transaction {
	return &domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.Financial,
		Status:        domain.Completed,
		Amount:        decimal.NewFromInt(2500),
		Donor:         domain.DonorSnapshot{Name: "Asha Patel", Email: "asha@example.com"},
		Receipt:       "DON-8812349071226643",
		AuditFields:   domain.AuditFields{CreatedAt: time.Now().UTC()},
	}
}

func TestIssueReceipt(t *testing.T) {
	ctx := context.Background()
	baseURL := "https://transparify.example"

	t.Run("Pending Transaction Is NotReady", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		svc := services.NewReceiptService(txnRepo, new(MockReceiptRepository), new(MockReceiptRenderer), new(MockArtifactStore), baseURL)

		pending := completedFinancialTxn()
		pending.Status = domain.Pending
		txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(pending, nil)

		_, err := svc.IssueReceipt(ctx, "txn-1")
		assert.ErrorIs(t, err, apperrors.ErrNotReady)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Unknown Transaction Is NotFound", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		svc := services.NewReceiptService(txnRepo, new(MockReceiptRepository), new(MockReceiptRenderer), new(MockArtifactStore), baseURL)

		txnRepo.On("FindTransactionByID", ctx, "txn-missing").Return(nil, apperrors.ErrNotFound)

		_, err := svc.IssueReceipt(ctx, "txn-missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("First Issuance Renders And Fills", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		receiptRepo := new(MockReceiptRepository)
		renderer := new(MockReceiptRenderer)
		store := new(MockArtifactStore)
		svc := services.NewReceiptService(txnRepo, receiptRepo, renderer, store, baseURL)

		txn := completedFinancialTxn()
		empty := &domain.Receipt{ReceiptID: "rcpt-1", TransactionID: "txn-1"}
		issuedAt := time.Now().UTC()
		pdfURL := "https://cdn.example/pdf/DON-8812349071226643.pdf"
		verifyURL := baseURL + "/api/receipts/DON-8812349071226643/verify"
		filled := &domain.Receipt{
			ReceiptID:     "rcpt-1",
			TransactionID: "txn-1",
			PDFURL:        pdfURL,
			QRCodeData:    verifyURL,
			IssuedAt:      &issuedAt,
		}

		txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(txn, nil)
		receiptRepo.On("FindReceiptByTransactionID", ctx, "txn-1").Return(empty, nil)
		renderer.On("RenderReceiptPDF", txn, verifyURL).Return([]byte("%PDF"), nil)
		store.On("Put", ctx, "pdf/DON-8812349071226643.pdf", "application/pdf", []byte("%PDF")).Return(pdfURL, nil)
		receiptRepo.On("FillReceiptArtifact", ctx, "rcpt-1", pdfURL, verifyURL, mock.Anything, mock.Anything, "system").Return(nil)
		receiptRepo.On("FindReceiptByID", ctx, "rcpt-1").Return(filled, nil)

		resp, err := svc.IssueReceipt(ctx, "txn-1")
		require.NoError(t, err)
		assert.Equal(t, pdfURL, resp.ReceiptLink)
		assert.Equal(t, "txn-1", resp.VerificationData.TransactionID)
		renderer.AssertExpectations(t)
		store.AssertExpectations(t)
		receiptRepo.AssertExpectations(t)
	})

	t.Run("Already Issued Skips Rendering", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		receiptRepo := new(MockReceiptRepository)
		renderer := new(MockReceiptRenderer)
		svc := services.NewReceiptService(txnRepo, receiptRepo, renderer, new(MockArtifactStore), baseURL)

		txn := completedFinancialTxn()
		issuedAt := time.Now().UTC()
		filled := &domain.Receipt{
			ReceiptID:     "rcpt-1",
			TransactionID: "txn-1",
			PDFURL:        "https://cdn.example/pdf/existing.pdf",
			IssuedAt:      &issuedAt,
		}

		txnRepo.On("FindTransactionByID", ctx, "txn-1").Return(txn, nil)
		receiptRepo.On("FindReceiptByTransactionID", ctx, "txn-1").Return(filled, nil)

		resp, err := svc.IssueReceipt(ctx, "txn-1")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/pdf/existing.pdf", resp.ReceiptLink)
		renderer.AssertNotCalled(t, "RenderReceiptPDF", mock.Anything, mock.Anything)
	})
}

func TestGetReceiptPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Token Is NotFound", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		svc := services.NewReceiptService(txnRepo, new(MockReceiptRepository), new(MockReceiptRenderer), new(MockArtifactStore), "https://transparify.example")

		txnRepo.On("FindTransactionByReceiptToken", ctx, "DON-0000000000000000").Return(nil, apperrors.ErrNotFound)

		_, err := svc.GetReceiptPDF(ctx, "DON-0000000000000000")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Not Yet Generated Is NotReady", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		receiptRepo := new(MockReceiptRepository)
		svc := services.NewReceiptService(txnRepo, receiptRepo, new(MockReceiptRenderer), new(MockArtifactStore), "https://transparify.example")

		txn := completedFinancialTxn()
		txnRepo.On("FindTransactionByReceiptToken", ctx, txn.Receipt).Return(txn, nil)
		receiptRepo.On("FindReceiptByTransactionID", ctx, "txn-1").
			Return(&domain.Receipt{ReceiptID: "rcpt-1", TransactionID: "txn-1"}, nil)

		_, err := svc.GetReceiptPDF(ctx, txn.Receipt)
		assert.ErrorIs(t, err, apperrors.ErrNotReady)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Issued Receipt Returns Identifiers Only", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		receiptRepo := new(MockReceiptRepository)
		svc := services.NewReceiptService(txnRepo, receiptRepo, new(MockReceiptRenderer), new(MockArtifactStore), "https://transparify.example")

		txn := completedFinancialTxn()
		issuedAt := time.Now().UTC()
		txnRepo.On("FindTransactionByReceiptToken", ctx, txn.Receipt).Return(txn, nil)
		receiptRepo.On("FindReceiptByTransactionID", ctx, "txn-1").Return(&domain.Receipt{
			ReceiptID:     "rcpt-1",
			TransactionID: "txn-1",
			PDFURL:        "https://cdn.example/pdf/x.pdf",
			IssuedAt:      &issuedAt,
		}, nil)

		resp, err := svc.GetReceiptPDF(ctx, txn.Receipt)
		require.NoError(t, err)
		assert.Equal(t, "rcpt-1", resp.ReceiptID)
		assert.Equal(t, "txn-1", resp.TransactionID)
		assert.Equal(t, "https://cdn.example/pdf/x.pdf", resp.PDFLink)
	})
}

func TestVerifyReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Token Is Invalid Not Error", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		svc := services.NewReceiptService(txnRepo, new(MockReceiptRepository), new(MockReceiptRenderer), new(MockArtifactStore), "https://transparify.example")

		txnRepo.On("FindTransactionByReceiptToken", ctx, "DON-1111111111111111").Return(nil, apperrors.ErrNotFound)

		resp, err := svc.VerifyReceipt(ctx, "DON-1111111111111111")
		require.NoError(t, err)
		assert.Equal(t, "invalid", resp.VerificationStatus)
		assert.Nil(t, resp.Transaction)
	})

	t.Run("Valid Token Redacts Donor Email", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		svc := services.NewReceiptService(txnRepo, new(MockReceiptRepository), new(MockReceiptRenderer), new(MockArtifactStore), "https://transparify.example")

		txn := completedFinancialTxn()
		txnRepo.On("FindTransactionByReceiptToken", ctx, txn.Receipt).Return(txn, nil)

		resp, err := svc.VerifyReceipt(ctx, txn.Receipt)
		require.NoError(t, err)
		assert.Equal(t, "valid", resp.VerificationStatus)
		assert.Equal(t, "Asha Patel", resp.Transaction.Donor.Name)
		require.NotNil(t, resp.Transaction.Amount)
		assert.True(t, resp.Transaction.Amount.Equal(decimal.NewFromInt(2500)))

		// The serialized payload must never contain the donor's email.
		payload, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.NotContains(t, string(payload), "asha@example.com")
	})

	t.Run("In-Kind Amount Is Null", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		svc := services.NewReceiptService(txnRepo, new(MockReceiptRepository), new(MockReceiptRenderer), new(MockArtifactStore), "https://transparify.example")

		txn := &domain.Transaction{
			TransactionID: "txn-2",
			Type:          domain.InKind,
			Status:        domain.Completed,
			Donor:         domain.DonorSnapshot{Name: "Ravi Kumar", Email: "ravi@example.com"},
			Items: []domain.DonationItem{
				{Description: "School bags", EstimatedValue: decimal.NewFromInt(6000)},
			},
			Receipt: "INKIND-4417520936815502",
		}
		txnRepo.On("FindTransactionByReceiptToken", ctx, txn.Receipt).Return(txn, nil)

		resp, err := svc.VerifyReceipt(ctx, txn.Receipt)
		require.NoError(t, err)
		assert.Nil(t, resp.Transaction.Amount)
		assert.Len(t, resp.Transaction.Items, 1)
	})
}
