package services

import (
	"context"

	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/dto"
)

// CampaignReaderSvc defines read operations for campaigns
type CampaignReaderSvc interface {
	// GetCampaignByID retrieves a specific campaign by its ID.
	GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// ListCampaigns retrieves a paginated list of campaigns, newest first.
	ListCampaigns(ctx context.Context, params dto.ListCampaignsParams) (*dto.ListCampaignsResponse, error)
}

// CampaignWriterSvc defines write operations for campaigns
type CampaignWriterSvc interface {
	// CreateCampaign persists a new campaign in draft status.
	CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, creatorUserID string) (*domain.Campaign, error)

	// UpdateCampaign updates campaign details.
	UpdateCampaign(ctx context.Context, campaignID string, req dto.UpdateCampaignRequest, requestingUserID string) (*domain.Campaign, error)

	// DonateToCampaign records a donation against a campaign and returns the
	// created transaction. The campaign's collected amount is only credited
	// once the donation completes.
	DonateToCampaign(ctx context.Context, campaignID string, req dto.DonateToCampaignRequest, creatorUserID string) (*domain.Transaction, error)
}

// CampaignSvcFacade combines all campaign-related service interfaces
type CampaignSvcFacade interface {
	CampaignReaderSvc
	CampaignWriterSvc
}
