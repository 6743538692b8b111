package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus indicates the publication state of a fundraising campaign.
type CampaignStatus string

const (
	Draft     CampaignStatus = "draft"
	Published CampaignStatus = "published"
	Closed    CampaignStatus = "closed"
)

// Campaign is a fundraising goal entity that financial donations can be
// linked to. CollectedAmount is monotonically non-decreasing and is credited
// only by confirmed financial transactions, exactly once per transaction.
type Campaign struct {
	CampaignID      string          `json:"campaignID"` // Primary Key (UUID)
	NGOID           string          `json:"ngoID"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	GoalAmount      decimal.Decimal `json:"goalAmount"`
	CollectedAmount decimal.Decimal `json:"collectedAmount"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	Status          CampaignStatus  `json:"status"`
	BannerURL       string          `json:"bannerUrl,omitempty"`
	AuditFields
}
