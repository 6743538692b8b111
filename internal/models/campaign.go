package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus indicates the publication state of a campaign.
type CampaignStatus string

const (
	Draft     CampaignStatus = "draft"
	Published CampaignStatus = "published"
	Closed    CampaignStatus = "closed"
)

// Campaign mirrors the campaigns table.
type Campaign struct {
	CampaignID      string          `json:"campaignID" db:"campaign_id"`
	NGOID           string          `json:"ngoID" db:"ngo_id"`
	Title           string          `json:"title" db:"title"`
	Description     string          `json:"description" db:"description"`
	GoalAmount      decimal.Decimal `json:"goalAmount" db:"goal_amount"`
	CollectedAmount decimal.Decimal `json:"collectedAmount" db:"collected_amount"`
	StartDate       time.Time       `json:"startDate" db:"start_date"`
	EndDate         time.Time       `json:"endDate" db:"end_date"`
	Status          CampaignStatus  `json:"status" db:"status"`
	BannerURL       string          `json:"bannerUrl" db:"banner_url"`
	AuditFields
}
