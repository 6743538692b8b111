package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/transparify/transparify_backend/internal/core/domain"
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/dto"
)

const (
	publicFeedLimit      = 10
	overviewRecentLimit  = 5
	donorHistoryShowLast = 5
)

// transparencyService assembles the aggregate donation views.
type transparencyService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransparencyService creates a new TransparencyService.
func NewTransparencyService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.TransparencySvcFacade {
	return &transparencyService{transactionRepo: transactionRepo}
}

// Ensure transparencyService implements the portssvc.TransparencySvcFacade interface
var _ portssvc.TransparencySvcFacade = (*transparencyService)(nil)

// GetPublicTransparency returns aggregate stats and a recent donation feed
// with donor identity fully stripped.
func (s *transparencyService) GetPublicTransparency(ctx context.Context) (*dto.PublicTransparencyResponse, error) {
	financial, err := s.transactionRepo.GetFinancialStats(ctx)
	if err != nil {
		return nil, err
	}
	inKind, err := s.transactionRepo.GetInKindStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.transactionRepo.ListCompletedTransactions(ctx, publicFeedLimit)
	if err != nil {
		return nil, err
	}

	feed := make([]dto.PublicDonation, len(recent))
	for i, txn := range recent {
		entry := dto.PublicDonation{
			Type:      string(txn.Type),
			Amount:    txn.Amount,
			CreatedAt: txn.CreatedAt,
		}
		if txn.Type == domain.InKind {
			entry.Amount = txn.TotalValue()
			entry.ItemCount = len(txn.Items)
		}
		feed[i] = entry
	}

	return &dto.PublicTransparencyResponse{
		Financial: dto.FinancialStats{
			TotalAmount: financial.TotalAmount,
			Count:       financial.DonationCount,
		},
		InKind: dto.InKindStats{
			Count:               inKind.DonationCount,
			TotalEstimatedValue: inKind.TotalEstimatedValue,
		},
		Recent: feed,
	}, nil
}

// GetDonationOverview returns the admin dashboard summary.
func (s *transparencyService) GetDonationOverview(ctx context.Context) (*dto.DonationOverviewResponse, error) {
	financial, err := s.transactionRepo.GetFinancialStats(ctx)
	if err != nil {
		return nil, err
	}
	inKind, err := s.transactionRepo.GetInKindStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.transactionRepo.ListCompletedTransactions(ctx, overviewRecentLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DonationOverviewResponse{
		TotalDonations:    financial.DonationCount + inKind.DonationCount,
		TotalDonatedMoney: financial.TotalAmount,
		RecentDonations:   dto.ToTransactionResponses(recent),
	}, nil
}

// GetMyDonations returns the donation history for a donor email.
func (s *transparencyService) GetMyDonations(ctx context.Context, donorEmail string) (*dto.MyDonationsResponse, error) {
	txns, err := s.transactionRepo.ListTransactionsByDonorEmail(ctx, donorEmail)
	if err != nil {
		return nil, err
	}

	totalMoney := decimal.Zero
	var totalCount int64
	for _, txn := range txns {
		if !txn.IsCompleted() {
			continue
		}
		totalCount++
		if txn.Type == domain.Financial {
			totalMoney = totalMoney.Add(txn.Amount)
		}
	}

	recent := txns
	if len(recent) > donorHistoryShowLast {
		recent = recent[:donorHistoryShowLast]
	}

	return &dto.MyDonationsResponse{
		TotalDonations:    totalCount,
		TotalDonatedMoney: totalMoney,
		RecentDonations:   dto.ToTransactionResponses(recent),
	}, nil
}
