package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes monetary donations from donated goods.
type TransactionType string

const (
	Financial TransactionType = "financial"
	InKind    TransactionType = "in-kind"
)

// TransactionStatus is the lifecycle flag of a donation.
type TransactionStatus string

const (
	Pending   TransactionStatus = "pending"
	Completed TransactionStatus = "completed"
	Cancelled TransactionStatus = "cancelled"
)

// Transaction mirrors the transactions table. The donor snapshot is stored
// denormalized (donor_name/donor_email) and items live in transaction_items.
type Transaction struct {
	TransactionID   string            `json:"transactionID" db:"transaction_id"`
	Type            TransactionType   `json:"type" db:"type"`
	Status          TransactionStatus `json:"status" db:"status"`
	Amount          decimal.Decimal   `json:"amount" db:"amount"`
	DonorName       string            `json:"donorName" db:"donor_name"`
	DonorEmail      string            `json:"donorEmail" db:"donor_email"`
	PaymentMethod   string            `json:"paymentMethod" db:"payment_method"`
	PaymentProvider string            `json:"paymentProvider" db:"payment_provider"`
	ProviderRef     *string           `json:"providerRef" db:"provider_ref"` // Unique when set
	Receipt         string            `json:"receipt" db:"receipt"`
	ReceiptID       *string           `json:"receiptID" db:"receipt_id"`
	CampaignID      *string           `json:"campaignID" db:"campaign_id"`
	NGOID           *string           `json:"ngoID" db:"ngo_id"`
	AuditFields
	Items []TransactionItem `json:"items"` // Loaded separately
}

// TransactionItem mirrors the transaction_items table; Position preserves
// the order items were submitted in.
type TransactionItem struct {
	ItemID         string          `json:"itemID" db:"item_id"`
	TransactionID  string          `json:"transactionID" db:"transaction_id"`
	Position       int             `json:"position" db:"position"`
	Description    string          `json:"description" db:"description"`
	EstimatedValue decimal.Decimal `json:"estimatedValue" db:"estimated_value"`
	ImageURLs      []string        `json:"imageUrls" db:"image_urls"`
}
