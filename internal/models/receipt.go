package models

import "time"

// Receipt mirrors the receipts table. PDF fields are nullable: the row is
// created empty at donation time and filled on first issuance.
type Receipt struct {
	ReceiptID        string     `json:"receiptID" db:"receipt_id"`
	TransactionID    string     `json:"transactionID" db:"transaction_id"`
	PDFURL           *string    `json:"pdfUrl" db:"pdf_url"`
	QRCodeData       *string    `json:"qrCodeData" db:"qr_code_data"`
	VerificationHash *string    `json:"verificationHash" db:"verification_hash"`
	IssuedAt         *time.Time `json:"issuedAt" db:"issued_at"`
	AuditFields
}
