package gateways

import "github.com/transparify/transparify_backend/internal/core/domain"

// ReceiptRenderer produces the printable receipt document for a completed
// transaction. verifyURL is embedded as a QR code so paper copies stay
// verifiable.
type ReceiptRenderer interface {
	RenderReceiptPDF(txn *domain.Transaction, verifyURL string) ([]byte, error)
}
