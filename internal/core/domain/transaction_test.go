package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/transparify/transparify_backend/internal/core/domain"
)

func TestTransaction_Validate(t *testing.T) {
	donor := domain.DonorSnapshot{Name: "Asha Patel", Email: "asha@example.com"}

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid financial transaction",
			tx: domain.Transaction{
				Type:            domain.Financial,
				Amount:          decimal.NewFromInt(1000),
				Donor:           donor,
				PaymentProvider: "razorpay",
				ProviderRef:     "pay_abc123",
			},
			wantErr: false,
		},
		{
			name: "valid in-kind transaction",
			tx: domain.Transaction{
				Type:  domain.InKind,
				Donor: donor,
				Items: []domain.DonationItem{
					{Description: "Blankets", EstimatedValue: decimal.NewFromInt(500)},
				},
			},
			wantErr: false,
		},
		{
			name: "financial with non-positive amount",
			tx: domain.Transaction{
				Type:   domain.Financial,
				Amount: decimal.Zero,
				Donor:  donor,
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name: "financial carrying in-kind items",
			tx: domain.Transaction{
				Type:   domain.Financial,
				Amount: decimal.NewFromInt(100),
				Donor:  donor,
				Items: []domain.DonationItem{
					{Description: "Blankets", EstimatedValue: decimal.NewFromInt(500)},
				},
			},
			wantErr: true,
			errMsg:  "items must be empty",
		},
		{
			name: "in-kind carrying an amount",
			tx: domain.Transaction{
				Type:   domain.InKind,
				Amount: decimal.NewFromInt(100),
				Donor:  donor,
				Items: []domain.DonationItem{
					{Description: "Blankets", EstimatedValue: decimal.NewFromInt(500)},
				},
			},
			wantErr: true,
			errMsg:  "amount must be zero",
		},
		{
			name: "in-kind with empty item list",
			tx: domain.Transaction{
				Type:  domain.InKind,
				Donor: donor,
			},
			wantErr: true,
			errMsg:  "at least one item",
		},
		{
			name: "in-kind item with non-positive estimate",
			tx: domain.Transaction{
				Type:  domain.InKind,
				Donor: donor,
				Items: []domain.DonationItem{
					{Description: "Blankets", EstimatedValue: decimal.Zero},
				},
			},
			wantErr: true,
			errMsg:  "estimated value must be positive",
		},
		{
			name: "missing donor snapshot",
			tx: domain.Transaction{
				Type:   domain.Financial,
				Amount: decimal.NewFromInt(100),
			},
			wantErr: true,
			errMsg:  "donor name and email",
		},
		{
			name: "unknown type",
			tx: domain.Transaction{
				Type:  domain.TransactionType("service"),
				Donor: donor,
			},
			wantErr: true,
			errMsg:  "unknown transaction type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_TotalValue(t *testing.T) {
	financial := domain.Transaction{Type: domain.Financial, Amount: decimal.NewFromInt(2500)}
	assert.True(t, financial.TotalValue().Equal(decimal.NewFromInt(2500)))

	inKind := domain.Transaction{
		Type: domain.InKind,
		Items: []domain.DonationItem{
			{Description: "Blankets", EstimatedValue: decimal.NewFromInt(500)},
			{Description: "Rice bags", EstimatedValue: decimal.NewFromInt(750)},
		},
	}
	assert.True(t, inKind.TotalValue().Equal(decimal.NewFromInt(1250)))
}
