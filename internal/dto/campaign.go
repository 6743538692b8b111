package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/transparify/transparify_backend/internal/core/domain"
)

// CreateCampaignRequest defines the data needed to create a fundraising campaign.
type CreateCampaignRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	GoalAmount  decimal.Decimal `json:"goalAmount" binding:"required"`
	StartDate   time.Time       `json:"startDate" binding:"required"`
	EndDate     time.Time       `json:"endDate" binding:"required,gtfield=StartDate"`
	BannerURL   string          `json:"bannerUrl"`
}

// UpdateCampaignRequest defines updatable campaign fields. Nil fields are
// left unchanged.
type UpdateCampaignRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	GoalAmount  *decimal.Decimal `json:"goalAmount,omitempty"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	BannerURL   *string          `json:"bannerUrl,omitempty"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=draft published closed"`
}

// ListCampaignsParams defines query parameters for listing campaigns.
type ListCampaignsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	NextToken *string `form:"nextToken" binding:"omitempty"`
}

// ListCampaignsResponse wraps a page of campaigns with the next page token.
type ListCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// DonateToCampaignRequest defines the body of a campaign donation. Financial
// donations require amount and payment method; in-kind ones require items.
type DonateToCampaignRequest struct {
	Type          string            `json:"type" binding:"required,oneof=financial in-kind"`
	Amount        decimal.Decimal   `json:"amount"`
	Donor         DonorDTO          `json:"donor" binding:"required"`
	PaymentMethod string            `json:"paymentMethod"`
	ProviderRef   string            `json:"providerRef"`
	Items         []DonationItemDTO `json:"items" binding:"omitempty,dive"`
}

// CampaignResponse defines the data returned for a campaign.
type CampaignResponse struct {
	CampaignID      string          `json:"campaignID"`
	NGOID           string          `json:"ngoID"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	GoalAmount      decimal.Decimal `json:"goalAmount"`
	CollectedAmount decimal.Decimal `json:"collectedAmount"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	Status          string          `json:"status"`
	BannerURL       string          `json:"bannerUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// DonationResponse combines the created transaction with its (still empty)
// receipt record for the campaign donate flow.
type DonationResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
	ReceiptID   string              `json:"receiptID"`
}

// ToCampaignResponse converts a domain.Campaign to CampaignResponse DTO.
func ToCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:      c.CampaignID,
		NGOID:           c.NGOID,
		Title:           c.Title,
		Description:     c.Description,
		GoalAmount:      c.GoalAmount,
		CollectedAmount: c.CollectedAmount,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Status:          string(c.Status),
		BannerURL:       c.BannerURL,
		CreatedAt:       c.CreatedAt,
	}
}

// ToCampaignResponses converts a slice of domain.Campaign to []CampaignResponse.
func ToCampaignResponses(campaigns []domain.Campaign) []CampaignResponse {
	responses := make([]CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		responses[i] = ToCampaignResponse(&c)
	}
	return responses
}
