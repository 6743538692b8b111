package services

import (
	"context"

	"github.com/transparify/transparify_backend/internal/dto"
)

// ReceiptIssuerSvc defines operations that produce receipt artifacts
type ReceiptIssuerSvc interface {
	// IssueReceipt returns the receipt link and verification data for a
	// transaction. A transaction that exists but has not completed yet returns
	// ErrNotReady so callers can distinguish retry-later from not-found.
	IssueReceipt(ctx context.Context, transactionID string) (*dto.ReceiptIssueResponse, error)

	// GetReceiptPDF looks up the stored PDF artifact behind a public receipt
	// token. It never triggers rendering; a receipt whose artifact has not been
	// generated yet returns ErrNotReady.
	GetReceiptPDF(ctx context.Context, receiptToken string) (*dto.ReceiptPDFResponse, error)
}

// ReceiptVerifierSvc defines the public verification operation
type ReceiptVerifierSvc interface {
	// VerifyReceipt checks a public receipt token and returns a redacted view of
	// the underlying transaction. Donor contact details are never exposed here.
	VerifyReceipt(ctx context.Context, receiptToken string) (*dto.VerifyReceiptResponse, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptIssuerSvc
	ReceiptVerifierSvc
}
