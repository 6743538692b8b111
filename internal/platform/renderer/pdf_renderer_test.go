package renderer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparify/transparify_backend/internal/core/domain"
)

func TestPDFRenderer_RenderReceiptPDF(t *testing.T) {
	r := NewPDFRenderer("TransparifyNGO")

	t.Run("Financial Receipt", func(t *testing.T) {
		txn := &domain.Transaction{
			TransactionID: "txn-1",
			Type:          domain.Financial,
			Status:        domain.Completed,
			Amount:        decimal.NewFromInt(2500),
			Donor:         domain.DonorSnapshot{Name: "Asha Patel", Email: "asha@example.com"},
			PaymentMethod: "upi",
			Receipt:       "DON-8812349071226643",
			AuditFields:   domain.AuditFields{CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)},
		}
		data, err := r.RenderReceiptPDF(txn, "https://transparify.example/api/receipts/DON-8812349071226643/verify")
		require.NoError(t, err)
		assert.Greater(t, len(data), 1000)
		assert.Equal(t, "%PDF", string(data[:4]))
	})

	t.Run("In-Kind Receipt", func(t *testing.T) {
		txn := &domain.Transaction{
			TransactionID: "txn-2",
			Type:          domain.InKind,
			Status:        domain.Completed,
			Donor:         domain.DonorSnapshot{Name: "Ravi Kumar", Email: "ravi@example.com"},
			Items: []domain.DonationItem{
				{Description: "School bags (20)", EstimatedValue: decimal.NewFromInt(6000)},
				{Description: "Notebooks (100)", EstimatedValue: decimal.NewFromInt(2000)},
			},
			Receipt:     "INKIND-4417520936815502",
			AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC()},
		}
		data, err := r.RenderReceiptPDF(txn, "https://transparify.example/api/receipts/INKIND-4417520936815502/verify")
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	})
}
