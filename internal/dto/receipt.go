package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/transparify/transparify_backend/internal/core/domain"
)

// ReceiptIssueResponse is returned when a receipt artifact is generated or
// fetched by the transaction's internal id. It intentionally carries the
// full transaction as verification data; this endpoint is donor/admin facing.
type ReceiptIssueResponse struct {
	ReceiptLink      string              `json:"receiptLink"`
	VerificationData TransactionResponse `json:"verificationData"`
}

// ReceiptPDFResponse is returned for lookups by the public receipt token.
// It deliberately exposes identifiers only, never the donor snapshot: the
// token may circulate beyond the original donor.
type ReceiptPDFResponse struct {
	PDFLink       string `json:"pdfLink"`
	ReceiptID     string `json:"receiptId"`
	TransactionID string `json:"transactionId"`
}

// VerifiedTransaction is the redacted view of a transaction exposed to any
// party holding a receipt token. Donor email is excluded.
type VerifiedTransaction struct {
	TransactionID string            `json:"id"`
	Type          string            `json:"type"`
	Donor         VerifiedDonor     `json:"donor"`
	Amount        *decimal.Decimal  `json:"amount"` // null for in-kind
	Items         []DonationItemDTO `json:"items"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// VerifiedDonor carries only the donor's name; email is redacted from the
// public verification surface.
type VerifiedDonor struct {
	Name string `json:"name"`
}

// VerifyReceiptResponse is the public verification result.
type VerifyReceiptResponse struct {
	VerificationStatus string               `json:"verificationStatus"` // "valid" or "invalid"
	Message            string               `json:"message,omitempty"`
	Transaction        *VerifiedTransaction `json:"transaction,omitempty"`
}

// ToVerifiedTransaction builds the redacted public view of a transaction.
func ToVerifiedTransaction(txn *domain.Transaction) *VerifiedTransaction {
	var amount *decimal.Decimal
	if txn.Type == domain.Financial {
		a := txn.Amount
		amount = &a
	}
	items := make([]DonationItemDTO, len(txn.Items))
	for i, item := range txn.Items {
		items[i] = DonationItemDTO{
			Description:    item.Description,
			EstimatedValue: item.EstimatedValue,
			ImageURLs:      item.ImageURLs,
		}
	}
	return &VerifiedTransaction{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Donor:         VerifiedDonor{Name: txn.Donor.Name},
		Amount:        amount,
		Items:         items,
		CreatedAt:     txn.CreatedAt,
	}
}
