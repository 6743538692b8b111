package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes monetary donations from donated goods.
type TransactionType string

const (
	Financial TransactionType = "financial"
	InKind    TransactionType = "in-kind"
)

// TransactionStatus is the lifecycle flag of a donation.
// Financial transactions start Pending and move to Completed exactly once,
// on verified gateway confirmation. In-kind donations have no external
// confirmation step and are Completed from creation.
type TransactionStatus string

const (
	Pending   TransactionStatus = "pending"
	Completed TransactionStatus = "completed"
	Cancelled TransactionStatus = "cancelled"
)

// DonorSnapshot is a copy of the donor's identity taken at donation time.
// It is deliberately decoupled from the live user record so later profile
// edits do not retroactively alter historical receipts.
type DonorSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DonationItem is one donated good within an in-kind transaction.
type DonationItem struct {
	Description    string          `json:"description"`
	EstimatedValue decimal.Decimal `json:"estimatedValue"`
	ImageURLs      []string        `json:"imageUrls,omitempty"`
}

// Transaction is the record of one donation event, financial or in-kind.
// Type determines which field group is populated: Amount/PaymentProvider/
// ProviderRef for financial, Items for in-kind, never both.
type Transaction struct {
	TransactionID   string            `json:"transactionID"` // Primary Key (UUID)
	Type            TransactionType   `json:"type"`
	Status          TransactionStatus `json:"status"`
	Amount          decimal.Decimal   `json:"amount"` // Positive for financial, zero otherwise
	Donor           DonorSnapshot     `json:"donor"`
	Items           []DonationItem    `json:"items,omitempty"`
	PaymentMethod   string            `json:"paymentMethod,omitempty"`
	PaymentProvider string            `json:"paymentProvider,omitempty"`
	ProviderRef     string            `json:"providerRef,omitempty"` // Gateway payment ID; join key for confirmation
	Receipt         string            `json:"receipt"`               // Public verification token, assigned once at creation
	ReceiptID       *string           `json:"receiptID,omitempty"`   // FK -> Receipt.receiptID (1:1)
	CampaignID      *string           `json:"campaignID,omitempty"`  // FK -> Campaign.campaignID
	NGOID           *string           `json:"ngoID,omitempty"`
	AuditFields
}

// Validate checks the structural invariants of a transaction: donor snapshot
// present, type known, and the financial/in-kind field groups mutually
// exclusive.
func (t Transaction) Validate() error {
	if t.Donor.Name == "" || t.Donor.Email == "" {
		return errors.New("donor name and email are required")
	}
	switch t.Type {
	case Financial:
		if t.Amount.LessThanOrEqual(decimal.Zero) {
			return errors.New("amount must be positive for financial transactions")
		}
		if len(t.Items) > 0 {
			return errors.New("items must be empty for financial transactions")
		}
	case InKind:
		if !t.Amount.IsZero() {
			return errors.New("amount must be zero for in-kind transactions")
		}
		if len(t.Items) == 0 {
			return errors.New("in-kind transactions require at least one item")
		}
		for _, item := range t.Items {
			if item.Description == "" {
				return errors.New("each item requires a description")
			}
			if item.EstimatedValue.LessThanOrEqual(decimal.Zero) {
				return errors.New("each item estimated value must be positive")
			}
		}
	default:
		return errors.New("unknown transaction type")
	}
	return nil
}

// IsCompleted reports whether the donation has reached its terminal accepted state.
func (t Transaction) IsCompleted() bool {
	return t.Status == Completed
}

// TotalValue returns the monetary value of the donation: the amount for
// financial transactions, the sum of item estimates for in-kind ones.
func (t Transaction) TotalValue() decimal.Decimal {
	if t.Type == Financial {
		return t.Amount
	}
	total := decimal.Zero
	for _, item := range t.Items {
		total = total.Add(item.EstimatedValue)
	}
	return total
}
