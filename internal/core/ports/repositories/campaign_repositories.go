package repositories

import (
	"context"

	"github.com/transparify/transparify_backend/internal/core/domain"
)

// CampaignReader defines read operations for campaign data
type CampaignReader interface {
	// FindCampaignByID retrieves a specific campaign by its unique identifier.
	FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// ListCampaigns retrieves a paginated list of campaigns, newest first,
	// using token-based pagination.
	ListCampaigns(ctx context.Context, limit int, nextToken *string) ([]domain.Campaign, *string, error)

	// ListCampaignsByStatus retrieves campaigns in the given status, newest first.
	ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus, limit int) ([]domain.Campaign, error)
}

// CampaignWriter defines write operations for campaign data
type CampaignWriter interface {
	// SaveCampaign persists a new campaign.
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error

	// UpdateCampaign updates mutable campaign fields (title, description, goal,
	// dates, banner, status).
	UpdateCampaign(ctx context.Context, campaign domain.Campaign) error
}

// CampaignRepositoryFacade combines all campaign-related repository interfaces
type CampaignRepositoryFacade interface {
	CampaignReader
	CampaignWriter
}

// CampaignRepositoryWithTx extends CampaignRepositoryFacade with transaction capabilities
type CampaignRepositoryWithTx interface {
	CampaignRepositoryFacade
	TransactionManager
}
