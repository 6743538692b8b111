package renderer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/transparify/transparify_backend/internal/core/domain"
	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
)

// PDFRenderer renders donation receipts as single-page A4 PDFs with an
// embedded QR code pointing at the public verification endpoint.
type PDFRenderer struct {
	orgName string
}

var _ gateways.ReceiptRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(orgName string) *PDFRenderer {
	if orgName == "" {
		orgName = "TransparifyNGO"
	}
	return &PDFRenderer{orgName: orgName}
}

func (r *PDFRenderer) RenderReceiptPDF(txn *domain.Transaction, verifyURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Donation Receipt %s", txn.Receipt), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, r.orgName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Donation Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 8, "Receipt No.", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, txn.Receipt, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 8, "Date", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, txn.CreatedAt.Format("02 Jan 2006"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 8, "Donor", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, txn.Donor.Name, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	switch txn.Type {
	case domain.Financial:
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Financial Donation", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(50, 8, "Amount", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("INR %s", txn.Amount.StringFixed(2)), "", 1, "L", false, 0, "")
		if txn.PaymentMethod != "" {
			pdf.CellFormat(50, 8, "Payment Method", "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 8, txn.PaymentMethod, "", 1, "L", false, 0, "")
		}
	case domain.InKind:
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "In-Kind Donation", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range txn.Items {
			pdf.CellFormat(120, 8, item.Description, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 8, fmt.Sprintf("INR %s", item.EstimatedValue.StringFixed(2)), "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(120, 8, "Total Estimated Value", "T", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("INR %s", txn.TotalValue().StringFixed(2)), "T", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	if verifyURL != "" {
		png, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("failed to encode verification QR code: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("verify-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("verify-qr", 80, pdf.GetY(), 50, 50, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + 52)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, "Scan to verify this receipt online", "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 6, verifyURL, "", 1, "C", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "This receipt is issued electronically and requires no signature. "+
		"Thank you for supporting our work.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
