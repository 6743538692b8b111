package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/dto"
	"github.com/transparify/transparify_backend/internal/middleware"
)

// receiptService produces, stores, and verifies donation receipts.
type receiptService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	receiptRepo     portsrepo.ReceiptRepositoryFacade
	renderer        gateways.ReceiptRenderer
	store           gateways.ReceiptArtifactStore
	verifyBaseURL   string
}

// NewReceiptService creates a new ReceiptService. verifyBaseURL is the public
// base under which /api/receipts/:token/verify is reachable.
func NewReceiptService(transactionRepo portsrepo.TransactionRepositoryFacade, receiptRepo portsrepo.ReceiptRepositoryFacade, renderer gateways.ReceiptRenderer, store gateways.ReceiptArtifactStore, verifyBaseURL string) portssvc.ReceiptSvcFacade {
	return &receiptService{
		transactionRepo: transactionRepo,
		receiptRepo:     receiptRepo,
		renderer:        renderer,
		store:           store,
		verifyBaseURL:   verifyBaseURL,
	}
}

// Ensure receiptService implements the portssvc.ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// verificationHash binds a receipt artifact to its transaction.
func verificationHash(receiptToken, transactionID string) string {
	sum := sha256.Sum256([]byte(receiptToken + "|" + transactionID))
	return hex.EncodeToString(sum[:])
}

func (s *receiptService) verifyURL(receiptToken string) string {
	return fmt.Sprintf("%s/api/receipts/%s/verify", s.verifyBaseURL, receiptToken)
}

// IssueReceipt renders and stores the receipt artifact for a completed
// transaction, filling the receipt row on first issuance. A transaction that
// exists but has not completed returns ErrNotReady.
func (s *receiptService) IssueReceipt(ctx context.Context, transactionID string) (*dto.ReceiptIssueResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !txn.IsCompleted() {
		return nil, fmt.Errorf("%w: payment for transaction %s is not confirmed yet", apperrors.ErrNotReady, transactionID)
	}

	receipt, err := s.receiptRepo.FindReceiptByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !receipt.IsIssued() {
		receipt, err = s.renderAndFill(ctx, txn, receipt)
		if err != nil {
			return nil, err
		}
		logger.Info("Receipt issued",
			slog.String("transaction_id", transactionID),
			slog.String("receipt_id", receipt.ReceiptID))
	}

	return &dto.ReceiptIssueResponse{
		ReceiptLink:      receipt.PDFURL,
		VerificationData: dto.ToTransactionResponse(txn),
	}, nil
}

// renderAndFill renders the PDF, stores it, and records the artifact fields.
// If another issuance won the race, the stored row is reloaded and used.
func (s *receiptService) renderAndFill(ctx context.Context, txn *domain.Transaction, receipt *domain.Receipt) (*domain.Receipt, error) {
	verifyURL := s.verifyURL(txn.Receipt)
	pdfBytes, err := s.renderer.RenderReceiptPDF(txn, verifyURL)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to render receipt PDF", err)
	}

	key := fmt.Sprintf("pdf/%s.pdf", txn.Receipt)
	pdfURL, err := s.store.Put(ctx, key, "application/pdf", pdfBytes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to store receipt PDF", err)
	}

	issuedAt := time.Now().UTC()
	hash := verificationHash(txn.Receipt, txn.TransactionID)
	if err := s.receiptRepo.FillReceiptArtifact(ctx, receipt.ReceiptID, pdfURL, verifyURL, hash, issuedAt, "system"); err != nil {
		return nil, err
	}

	return s.receiptRepo.FindReceiptByID(ctx, receipt.ReceiptID)
}

// GetReceiptPDF looks up an issued artifact by public receipt token. It never
// renders: an empty receipt row means issuance has not happened yet, which is
// reported distinctly from an unknown token.
func (s *receiptService) GetReceiptPDF(ctx context.Context, receiptToken string) (*dto.ReceiptPDFResponse, error) {
	txn, err := s.transactionRepo.FindTransactionByReceiptToken(ctx, receiptToken)
	if err != nil {
		return nil, err
	}

	receipt, err := s.receiptRepo.FindReceiptByTransactionID(ctx, txn.TransactionID)
	if err != nil {
		return nil, err
	}
	if !receipt.IsIssued() {
		return nil, fmt.Errorf("%w: receipt PDF for %s has not been generated yet", apperrors.ErrNotReady, receiptToken)
	}

	return &dto.ReceiptPDFResponse{
		PDFLink:       receipt.PDFURL,
		ReceiptID:     receipt.ReceiptID,
		TransactionID: receipt.TransactionID,
	}, nil
}

// VerifyReceipt resolves a public receipt token into a redacted transaction
// view. An unknown token is a negative verification result, not an error.
func (s *receiptService) VerifyReceipt(ctx context.Context, receiptToken string) (*dto.VerifyReceiptResponse, error) {
	txn, err := s.transactionRepo.FindTransactionByReceiptToken(ctx, receiptToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.VerifyReceiptResponse{
				VerificationStatus: "invalid",
				Message:            "No donation matches this receipt",
			}, nil
		}
		return nil, err
	}

	return &dto.VerifyReceiptResponse{
		VerificationStatus: "valid",
		Transaction:        dto.ToVerifiedTransaction(txn),
	}, nil
}
