package repositories

import (
	"context"
	"time"

	"github.com/transparify/transparify_backend/internal/core/domain"
)

// TransactionReader defines read operations for donation transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier,
	// including its in-kind items when present.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByProviderRef retrieves the transaction linked to a payment
	// provider reference (e.g. a Razorpay payment ID).
	FindTransactionByProviderRef(ctx context.Context, providerRef string) (*domain.Transaction, error)

	// FindTransactionByReceiptToken retrieves the transaction carrying the given
	// public receipt token.
	FindTransactionByReceiptToken(ctx context.Context, receiptToken string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions, newest first,
	// using token-based pagination. It returns the transactions, a token for the
	// next page, and an error.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsByDonorEmail retrieves all transactions recorded against a
	// donor email address, newest first.
	ListTransactionsByDonorEmail(ctx context.Context, email string) ([]domain.Transaction, error)

	// ListCompletedTransactions retrieves completed transactions, newest first,
	// limited to at most limit rows. Used for public transparency feeds.
	ListCompletedTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for donation transaction data
type TransactionWriter interface {
	// SaveTransaction persists a transaction, its in-kind items, and its empty
	// receipt shell within a single database transaction. When the transaction
	// is already completed and carries a campaign, the campaign's collected
	// amount is credited in the same database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, receipt domain.Receipt) error

	// ConfirmPaymentCapture atomically flips the transaction matching providerRef
	// from pending to completed and credits its campaign, if any, in the same
	// database transaction. It returns the transaction after the attempt and
	// whether this call performed the flip. A transaction already completed
	// returns (txn, false, nil); a missing providerRef returns ErrNotFound.
	ConfirmPaymentCapture(ctx context.Context, providerRef string, updatedBy string, at time.Time) (*domain.Transaction, bool, error)
}

// TransactionStatsReader defines aggregate read operations over transactions
type TransactionStatsReader interface {
	// GetFinancialStats returns total amount, donation count, and average amount
	// over completed financial transactions.
	GetFinancialStats(ctx context.Context) (*domain.FinancialStats, error)

	// GetInKindStats returns total estimated value and item count over completed
	// in-kind transactions.
	GetInKindStats(ctx context.Context) (*domain.InKindStats, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionStatsReader
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
