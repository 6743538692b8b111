package mapping

import (
	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	m := models.Receipt{
		ReceiptID:     d.ReceiptID,
		TransactionID: d.TransactionID,
		IssuedAt:      d.IssuedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.PDFURL != "" {
		v := d.PDFURL
		m.PDFURL = &v
	}
	if d.QRCodeData != "" {
		v := d.QRCodeData
		m.QRCodeData = &v
	}
	if d.VerificationHash != "" {
		v := d.VerificationHash
		m.VerificationHash = &v
	}
	return m
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	d := domain.Receipt{
		ReceiptID:     m.ReceiptID,
		TransactionID: m.TransactionID,
		IssuedAt:      m.IssuedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.PDFURL != nil {
		d.PDFURL = *m.PDFURL
	}
	if m.QRCodeData != nil {
		d.QRCodeData = *m.QRCodeData
	}
	if m.VerificationHash != nil {
		d.VerificationHash = *m.VerificationHash
	}
	return d
}
