package domain

import "time"

// Receipt is the issued artifact record for a transaction. A row is created
// empty at donation time and filled in once the PDF artifact has been
// rendered and stored; IssuedAt stays nil until then.
type Receipt struct {
	ReceiptID        string     `json:"receiptID"`     // Primary Key (UUID)
	TransactionID    string     `json:"transactionID"` // FK -> Transaction.transactionID (unique)
	PDFURL           string     `json:"pdfUrl,omitempty"`
	QRCodeData       string     `json:"qrCodeData,omitempty"`
	VerificationHash string     `json:"verificationHash,omitempty"`
	IssuedAt         *time.Time `json:"issuedAt,omitempty"`
	AuditFields
}

// IsIssued reports whether the PDF artifact has been generated for this receipt.
func (r Receipt) IsIssued() bool {
	return r.IssuedAt != nil && r.PDFURL != ""
}
