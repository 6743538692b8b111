package repositories

import (
	"context"
	"time"

	"github.com/transparify/transparify_backend/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt by its unique identifier.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// FindReceiptByTransactionID retrieves the receipt shell linked to a transaction.
	FindReceiptByTransactionID(ctx context.Context, transactionID string) (*domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipt data
type ReceiptWriter interface {
	// FillReceiptArtifact records the rendered artifact fields (PDF URL, QR data,
	// verification hash) and marks the receipt as issued.
	FillReceiptArtifact(ctx context.Context, receiptID string, pdfURL string, qrCodeData string, verificationHash string, issuedAt time.Time, updatedBy string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// ReceiptRepositoryWithTx extends ReceiptRepositoryFacade with transaction capabilities
type ReceiptRepositoryWithTx interface {
	ReceiptRepositoryFacade
	TransactionManager
}
