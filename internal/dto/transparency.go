package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialStats aggregates completed financial donations.
type FinancialStats struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int64           `json:"count"`
}

// InKindStats aggregates in-kind donations.
type InKindStats struct {
	Count               int64           `json:"count"`
	TotalEstimatedValue decimal.Decimal `json:"totalEstimatedValue"`
}

// PublicDonation is a donation entry with donor identity fully stripped,
// safe for the public transparency feed.
type PublicDonation struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	ItemCount int             `json:"itemCount,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PublicTransparencyResponse is the public aggregate view of donations.
type PublicTransparencyResponse struct {
	Financial FinancialStats   `json:"financial"`
	InKind    InKindStats      `json:"inKind"`
	Recent    []PublicDonation `json:"recent"`
}

// DonationOverviewResponse is the admin dashboard summary.
type DonationOverviewResponse struct {
	TotalDonations    int64                 `json:"totalDonations"`
	TotalDonatedMoney decimal.Decimal       `json:"totalDonatedMoney"`
	RecentDonations   []TransactionResponse `json:"recentDonations"`
}

// MyDonationsResponse summarizes the authenticated donor's giving history.
type MyDonationsResponse struct {
	TotalDonations    int64                 `json:"totalDonations"`
	TotalDonatedMoney decimal.Decimal       `json:"totalDonatedMoney"`
	RecentDonations   []TransactionResponse `json:"recentDonations"`
}
