package mapping

import (
	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var providerRef *string
	if d.ProviderRef != "" {
		ref := d.ProviderRef
		providerRef = &ref
	}
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Type:            models.TransactionType(d.Type),
		Status:          models.TransactionStatus(d.Status),
		Amount:          d.Amount,
		DonorName:       d.Donor.Name,
		DonorEmail:      d.Donor.Email,
		PaymentMethod:   d.PaymentMethod,
		PaymentProvider: d.PaymentProvider,
		ProviderRef:     providerRef,
		Receipt:         d.Receipt,
		ReceiptID:       d.ReceiptID,
		CampaignID:      d.CampaignID,
		NGOID:           d.NGOID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		Items:           ToModelItems(d.TransactionID, d.Items),
	}
}

// ToModelItems converts domain DonationItems to model TransactionItems,
// preserving submission order via Position.
func ToModelItems(transactionID string, items []domain.DonationItem) []models.TransactionItem {
	out := make([]models.TransactionItem, len(items))
	for i, item := range items {
		out[i] = models.TransactionItem{
			TransactionID:  transactionID,
			Position:       i,
			Description:    item.Description,
			EstimatedValue: item.EstimatedValue,
			ImageURLs:      item.ImageURLs,
		}
	}
	return out
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	providerRef := ""
	if m.ProviderRef != nil {
		providerRef = *m.ProviderRef
	}
	items := make([]domain.DonationItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = domain.DonationItem{
			Description:    item.Description,
			EstimatedValue: item.EstimatedValue,
			ImageURLs:      item.ImageURLs,
		}
	}
	if len(items) == 0 {
		items = nil
	}
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Type:            domain.TransactionType(m.Type),
		Status:          domain.TransactionStatus(m.Status),
		Amount:          m.Amount,
		Donor:           domain.DonorSnapshot{Name: m.DonorName, Email: m.DonorEmail},
		Items:           items,
		PaymentMethod:   m.PaymentMethod,
		PaymentProvider: m.PaymentProvider,
		ProviderRef:     providerRef,
		Receipt:         m.Receipt,
		ReceiptID:       m.ReceiptID,
		CampaignID:      m.CampaignID,
		NGOID:           m.NGOID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
