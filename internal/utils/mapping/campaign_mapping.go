package mapping

import (
	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/models"
)

// ToModelCampaign converts a domain Campaign to a model Campaign
func ToModelCampaign(d domain.Campaign) models.Campaign {
	return models.Campaign{
		CampaignID:      d.CampaignID,
		NGOID:           d.NGOID,
		Title:           d.Title,
		Description:     d.Description,
		GoalAmount:      d.GoalAmount,
		CollectedAmount: d.CollectedAmount,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		Status:          models.CampaignStatus(d.Status),
		BannerURL:       d.BannerURL,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCampaign converts a model Campaign to a domain Campaign
func ToDomainCampaign(m models.Campaign) domain.Campaign {
	return domain.Campaign{
		CampaignID:      m.CampaignID,
		NGOID:           m.NGOID,
		Title:           m.Title,
		Description:     m.Description,
		GoalAmount:      m.GoalAmount,
		CollectedAmount: m.CollectedAmount,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Status:          domain.CampaignStatus(m.Status),
		BannerURL:       m.BannerURL,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCampaignSlice converts a slice of model Campaigns to a slice of domain Campaigns
func ToDomainCampaignSlice(ms []models.Campaign) []domain.Campaign {
	ds := make([]domain.Campaign, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCampaign(m)
	}
	return ds
}
