package domain

import "github.com/shopspring/decimal"

// FinancialStats aggregates completed financial donations.
type FinancialStats struct {
	TotalAmount   decimal.Decimal
	DonationCount int64
	AverageAmount decimal.Decimal
}

// InKindStats aggregates completed in-kind donations.
type InKindStats struct {
	TotalEstimatedValue decimal.Decimal
	DonationCount       int64
	ItemCount           int64
}
