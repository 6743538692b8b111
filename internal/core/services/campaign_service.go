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
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/dto"
	"github.com/transparify/transparify_backend/internal/middleware"
)

// campaignService provides fundraising campaign operations.
type campaignService struct {
	campaignRepo   portsrepo.CampaignRepositoryFacade
	transactionSvc portssvc.TransactionSvcFacade
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(campaignRepo portsrepo.CampaignRepositoryFacade, transactionSvc portssvc.TransactionSvcFacade) portssvc.CampaignSvcFacade {
	return &campaignService{
		campaignRepo:   campaignRepo,
		transactionSvc: transactionSvc,
	}
}

// Ensure campaignService implements the portssvc.CampaignSvcFacade interface
var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

// CreateCampaign persists a new campaign in draft status.
func (s *campaignService) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, creatorUserID string) (*domain.Campaign, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.GoalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: goal amount must be positive", apperrors.ErrValidation)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	campaign := domain.Campaign{
		CampaignID:      uuid.NewString(),
		NGOID:           creatorUserID,
		Title:           req.Title,
		Description:     req.Description,
		GoalAmount:      req.GoalAmount,
		CollectedAmount: decimal.Zero,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          domain.Draft,
		BannerURL:       req.BannerURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		logger.Error("Failed to save campaign", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Campaign created", slog.String("campaign_id", campaign.CampaignID))
	return &campaign, nil
}

// UpdateCampaign updates campaign details.
func (s *campaignService) UpdateCampaign(ctx context.Context, campaignID string, req dto.UpdateCampaignRequest, requestingUserID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.GoalAmount != nil {
		if req.GoalAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: goal amount must be positive", apperrors.ErrValidation)
		}
		campaign.GoalAmount = *req.GoalAmount
	}
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = *req.EndDate
	}
	if !campaign.EndDate.After(campaign.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}
	if req.BannerURL != nil {
		campaign.BannerURL = *req.BannerURL
	}
	if req.Status != nil {
		status := domain.CampaignStatus(*req.Status)
		// Closed campaigns stay closed
		if campaign.Status == domain.Closed && status != domain.Closed {
			return nil, fmt.Errorf("%w: a closed campaign cannot be reopened", apperrors.ErrValidation)
		}
		campaign.Status = status
	}

	campaign.LastUpdatedAt = time.Now().UTC()
	campaign.LastUpdatedBy = requestingUserID

	if err := s.campaignRepo.UpdateCampaign(ctx, *campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// DonateToCampaign records a donation against a campaign. The campaign's
// collected amount is credited by the transaction flow, never directly here.
func (s *campaignService) DonateToCampaign(ctx context.Context, campaignID string, req dto.DonateToCampaignRequest, creatorUserID string) (*domain.Transaction, error) {
	switch domain.TransactionType(req.Type) {
	case domain.Financial:
		if req.PaymentMethod == "" {
			return nil, fmt.Errorf("%w: payment method is required for a financial donation", apperrors.ErrValidation)
		}
		return s.transactionSvc.CreateFinancialTransaction(ctx, dto.CreateTransactionRequest{
			Type:          req.Type,
			Amount:        req.Amount,
			Donor:         req.Donor,
			PaymentMethod: req.PaymentMethod,
			ProviderRef:   req.ProviderRef,
			CampaignID:    &campaignID,
		}, creatorUserID)
	case domain.InKind:
		if len(req.Items) == 0 {
			return nil, fmt.Errorf("%w: items are required for an in-kind donation", apperrors.ErrValidation)
		}
		return s.transactionSvc.CreateInKindTransaction(ctx, dto.CreateInKindTransactionRequest{
			Donor:      req.Donor,
			Items:      req.Items,
			CampaignID: &campaignID,
		}, creatorUserID)
	default:
		return nil, fmt.Errorf("%w: unknown donation type %q", apperrors.ErrValidation, req.Type)
	}
}

// GetCampaignByID retrieves a campaign by its ID.
func (s *campaignService) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return s.campaignRepo.FindCampaignByID(ctx, campaignID)
}

// ListCampaigns retrieves a paginated list of campaigns, newest first.
func (s *campaignService) ListCampaigns(ctx context.Context, params dto.ListCampaignsParams) (*dto.ListCampaignsResponse, error) {
	campaigns, nextToken, err := s.campaignRepo.ListCampaigns(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListCampaignsResponse{
		Campaigns: dto.ToCampaignResponses(campaigns),
		NextToken: nextToken,
	}, nil
}
