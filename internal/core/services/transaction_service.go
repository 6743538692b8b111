package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/dto"
	"github.com/transparify/transparify_backend/internal/middleware"
	"github.com/transparify/transparify_backend/internal/utils"
)

const defaultPaymentProvider = "razorpay"

// transactionService provides donation transaction operations.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	campaignRepo    portsrepo.CampaignRepositoryFacade
	gateway         gateways.PaymentGateway
}

// NewTransactionService creates a new TransactionService. gateway may be nil
// in tests; payment state is then never fetched at creation time.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, campaignRepo portsrepo.CampaignRepositoryFacade, gateway gateways.PaymentGateway) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		campaignRepo:    campaignRepo,
		gateway:         gateway,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateFinancialTransaction records a financial donation. The transaction
// starts pending; it completes immediately only when the payment provider
// already reports the referenced payment as captured.
func (s *transactionService) CreateFinancialTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if req.CampaignID != nil {
		if err := s.checkCampaignAcceptsDonations(ctx, *req.CampaignID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	receiptToken, err := utils.GenerateReceiptToken(domain.Financial)
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt token: %w", err)
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            domain.Financial,
		Status:          domain.Pending,
		Amount:          req.Amount,
		Donor:           domain.DonorSnapshot{Name: req.Donor.Name, Email: req.Donor.Email},
		PaymentMethod:   req.PaymentMethod,
		PaymentProvider: defaultPaymentProvider,
		ProviderRef:     req.ProviderRef,
		Receipt:         receiptToken,
		CampaignID:      req.CampaignID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Manual and offline payment methods need no provider confirmation.
	if txn.ProviderRef == "" {
		txn.Status = domain.Completed
		txn.PaymentProvider = ""
	} else if s.gateway != nil {
		capture, fetchErr := s.gateway.FetchPayment(ctx, txn.ProviderRef)
		if fetchErr != nil {
			logger.Warn("Could not fetch payment state at creation; leaving transaction pending",
				slog.String("provider_ref", txn.ProviderRef), slog.String("error", fetchErr.Error()))
		} else if capture.Captured() {
			txn.Status = domain.Completed
		}
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	receipt := s.newReceiptShell(txn, now, creatorUserID)
	if err := s.transactionRepo.SaveTransaction(ctx, txn, receipt); err != nil {
		logger.Error("Failed to save financial transaction", slog.String("error", err.Error()))
		return nil, err
	}
	txn.ReceiptID = &receipt.ReceiptID

	logger.Info("Financial transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("status", string(txn.Status)))
	return &txn, nil
}

// CreateInKindTransaction records an in-kind donation. There is no payment
// leg, so the transaction completes immediately.
func (s *transactionService) CreateInKindTransaction(ctx context.Context, req dto.CreateInKindTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CampaignID != nil {
		if err := s.checkCampaignAcceptsDonations(ctx, *req.CampaignID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	receiptToken, err := utils.GenerateReceiptToken(domain.InKind)
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt token: %w", err)
	}

	items := make([]domain.DonationItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.DonationItem{
			Description:    item.Description,
			EstimatedValue: item.EstimatedValue,
			ImageURLs:      item.ImageURLs,
		}
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.InKind,
		Status:        domain.Completed,
		Donor:         domain.DonorSnapshot{Name: req.Donor.Name, Email: req.Donor.Email},
		Items:         items,
		Receipt:       receiptToken,
		CampaignID:    req.CampaignID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	receipt := s.newReceiptShell(txn, now, creatorUserID)
	if err := s.transactionRepo.SaveTransaction(ctx, txn, receipt); err != nil {
		logger.Error("Failed to save in-kind transaction", slog.String("error", err.Error()))
		return nil, err
	}
	txn.ReceiptID = &receipt.ReceiptID

	logger.Info("In-kind transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

// ConfirmPaymentCapture marks the transaction behind a provider payment
// reference as completed. Repeat confirmations are a no-op success, so
// provider webhook retries never credit a campaign twice.
func (s *transactionService) ConfirmPaymentCapture(ctx context.Context, providerRef string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, flipped, err := s.transactionRepo.ConfirmPaymentCapture(ctx, providerRef, "system", time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if flipped {
		logger.Info("Payment capture confirmed",
			slog.String("provider_ref", providerRef),
			slog.String("transaction_id", txn.TransactionID))
	} else {
		logger.Info("Payment capture already confirmed; no-op",
			slog.String("provider_ref", providerRef),
			slog.String("transaction_id", txn.TransactionID))
	}
	return txn, nil
}

// GetTransactionByID retrieves a transaction by its ID.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves a paginated list of transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// checkCampaignAcceptsDonations verifies the target campaign exists and is
// published.
func (s *transactionService) checkCampaignAcceptsDonations(ctx context.Context, campaignID string) error {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.Status != domain.Published {
		return fmt.Errorf("%w: campaign %s is not accepting donations", apperrors.ErrValidation, campaignID)
	}
	return nil
}

func (s *transactionService) newReceiptShell(txn domain.Transaction, now time.Time, creatorUserID string) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     uuid.NewString(),
		TransactionID: txn.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}
