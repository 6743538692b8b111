package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/transparify/transparify_backend/internal/core/domain"
)

// DonorDTO carries the donor snapshot taken at donation time.
type DonorDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// DonationItemDTO is one donated good within an in-kind donation request.
type DonationItemDTO struct {
	Description    string          `json:"description" binding:"required"`
	EstimatedValue decimal.Decimal `json:"estimatedValue" binding:"required"`
	ImageURLs      []string        `json:"imageUrls"`
}

// CreateTransactionRequest defines the data needed to record a financial donation.
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required,oneof=financial"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Donor         DonorDTO        `json:"donor" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	ProviderRef   string          `json:"providerRef"`
	CampaignID    *string         `json:"campaignID"`
}

// CreateInKindTransactionRequest defines the data needed to record an in-kind donation.
type CreateInKindTransactionRequest struct {
	Donor      DonorDTO          `json:"donor" binding:"required"`
	Items      []DonationItemDTO `json:"items" binding:"required,min=1,dive"`
	CampaignID *string           `json:"campaignID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string            `json:"transactionID"`
	Type            string            `json:"type"`
	Status          string            `json:"status"`
	Amount          decimal.Decimal   `json:"amount"`
	Donor           DonorDTO          `json:"donor"`
	Items           []DonationItemDTO `json:"items,omitempty"`
	PaymentMethod   string            `json:"paymentMethod,omitempty"`
	PaymentProvider string            `json:"paymentProvider,omitempty"`
	ProviderRef     string            `json:"providerRef,omitempty"`
	Receipt         string            `json:"receipt"`
	CampaignID      *string           `json:"campaignID,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for the admin transaction listing.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps the newest-first transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	items := make([]DonationItemDTO, len(txn.Items))
	for i, item := range txn.Items {
		items[i] = DonationItemDTO{
			Description:    item.Description,
			EstimatedValue: item.EstimatedValue,
			ImageURLs:      item.ImageURLs,
		}
	}
	if len(items) == 0 {
		items = nil
	}
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Type:            string(txn.Type),
		Status:          string(txn.Status),
		Amount:          txn.Amount,
		Donor:           DonorDTO{Name: txn.Donor.Name, Email: txn.Donor.Email},
		Items:           items,
		PaymentMethod:   txn.PaymentMethod,
		PaymentProvider: txn.PaymentProvider,
		ProviderRef:     txn.ProviderRef,
		Receipt:         txn.Receipt,
		CampaignID:      txn.CampaignID,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
