package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	"github.com/transparify/transparify_backend/internal/models"
	"github.com/transparify/transparify_backend/internal/utils/mapping"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryWithTx {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryWithTx
var _ portsrepo.ReceiptRepositoryWithTx = (*PgxReceiptRepository)(nil)

const receiptColumns = `
	receipt_id, transaction_id, pdf_url, qr_code_data, verification_hash,
	issued_at, created_at, created_by, last_updated_at, last_updated_by
`

func scanReceipt(row pgx.Row) (*models.Receipt, error) {
	var rec models.Receipt
	err := row.Scan(
		&rec.ReceiptID,
		&rec.TransactionID,
		&rec.PDFURL,
		&rec.QRCodeData,
		&rec.VerificationHash,
		&rec.IssuedAt,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindReceiptByID retrieves a receipt by its ID.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	return r.findReceiptWhere(ctx, "receipt_id = $1", receiptID)
}

// FindReceiptByTransactionID retrieves the receipt shell linked to a transaction.
func (r *PgxReceiptRepository) FindReceiptByTransactionID(ctx context.Context, transactionID string) (*domain.Receipt, error) {
	return r.findReceiptWhere(ctx, "transaction_id = $1", transactionID)
}

func (r *PgxReceiptRepository) findReceiptWhere(ctx context.Context, whereClause string, arg any) (*domain.Receipt, error) {
	query := "SELECT " + receiptColumns + " FROM receipts WHERE " + whereClause + ";"
	modelReceipt, err := scanReceipt(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find receipt", err)
	}
	receiptDomain := mapping.ToDomainReceipt(*modelReceipt)
	return &receiptDomain, nil
}

// FillReceiptArtifact records the rendered artifact fields and marks the
// receipt issued. Only a still-empty receipt row is filled; concurrent
// issuance attempts after the first match zero rows and are treated as a
// no-op so the first rendered artifact wins.
func (r *PgxReceiptRepository) FillReceiptArtifact(ctx context.Context, receiptID string, pdfURL string, qrCodeData string, verificationHash string, issuedAt time.Time, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE receipts
		SET pdf_url = $2, qr_code_data = $3, verification_hash = $4,
		    issued_at = $5, last_updated_at = $5, last_updated_by = $6
		WHERE receipt_id = $1 AND pdf_url IS NULL;
	`, receiptID, pdfURL, qrCodeData, verificationHash, issuedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to fill receipt artifact "+receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the receipt does not exist or it was already filled.
		if _, findErr := r.FindReceiptByID(ctx, receiptID); findErr != nil {
			return findErr
		}
	}
	return nil
}
