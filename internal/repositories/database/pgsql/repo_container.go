package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	campaignRepo := newPgxCampaignRepository(dbPool)
	receiptRepo := newPgxReceiptRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo: transactionRepo,
		CampaignRepo:    campaignRepo,
		ReceiptRepo:     receiptRepo,
		UserRepo:        userRepo,
	}
}
