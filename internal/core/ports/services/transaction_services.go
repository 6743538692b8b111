package services

import (
	"context"

	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for donation transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for donation transactions
type TransactionWriterSvc interface {
	// CreateFinancialTransaction records a financial donation. When the request
	// carries a provider reference already captured at the gateway, the
	// transaction completes immediately; otherwise it stays pending until the
	// payment webhook confirms it.
	CreateFinancialTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// CreateInKindTransaction records an in-kind donation of goods. In-kind
	// donations need no payment capture and complete immediately.
	CreateInKindTransaction(ctx context.Context, req dto.CreateInKindTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// ConfirmPaymentCapture marks the transaction behind a provider payment
	// reference as completed. The operation is idempotent: repeated
	// confirmations of the same reference succeed without crediting twice.
	ConfirmPaymentCapture(ctx context.Context, providerRef string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
// This is a facade for clients that need access to all operations
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
