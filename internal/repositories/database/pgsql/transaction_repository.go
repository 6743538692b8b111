package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	"github.com/transparify/transparify_backend/internal/models"
	"github.com/transparify/transparify_backend/internal/utils/mapping"
	"github.com/transparify/transparify_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for donation transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const transactionColumns = `
	transaction_id, type, status, amount, donor_name, donor_email,
	payment_method, payment_provider, provider_ref, receipt, receipt_id,
	campaign_id, ngo_id, created_at, created_by, last_updated_at, last_updated_by
`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Type,
		&t.Status,
		&t.Amount,
		&t.DonorName,
		&t.DonorEmail,
		&t.PaymentMethod,
		&t.PaymentProvider,
		&t.ProviderRef,
		&t.Receipt,
		&t.ReceiptID,
		&t.CampaignID,
		&t.NGOID,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTransaction persists a transaction, its in-kind items, and its empty
// receipt shell within a single DB transaction. A transaction arriving already
// completed credits its campaign here, in the same DB transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, receipt domain.Receipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)
	modelReceipt := mapping.ToModelReceipt(receipt)
	modelTxn.ReceiptID = &modelReceipt.ReceiptID

	txnQuery := `
		INSERT INTO transactions (
			transaction_id, type, status, amount, donor_name, donor_email,
			payment_method, payment_provider, provider_ref, receipt, receipt_id,
			campaign_id, ngo_id, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.Type,
		modelTxn.Status,
		modelTxn.Amount,
		modelTxn.DonorName,
		modelTxn.DonorEmail,
		modelTxn.PaymentMethod,
		modelTxn.PaymentProvider,
		modelTxn.ProviderRef,
		modelTxn.Receipt,
		modelTxn.ReceiptID,
		modelTxn.CampaignID,
		modelTxn.NGOID,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	if len(modelTxn.Items) > 0 {
		batch := &pgx.Batch{}
		itemQuery := `
			INSERT INTO transaction_items (item_id, transaction_id, position, description, estimated_value, image_urls)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		for _, item := range modelTxn.Items {
			if item.ItemID == "" {
				item.ItemID = uuid.NewString()
			}
			batch.Queue(itemQuery,
				item.ItemID,
				item.TransactionID,
				item.Position,
				item.Description,
				item.EstimatedValue,
				item.ImageURLs,
			)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert items for transaction "+modelTxn.TransactionID, err)
		}
	}

	receiptQuery := `
		INSERT INTO receipts (receipt_id, transaction_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, receiptQuery,
		modelReceipt.ReceiptID,
		modelReceipt.TransactionID,
		modelReceipt.CreatedAt,
		modelReceipt.CreatedBy,
		modelReceipt.LastUpdatedAt,
		modelReceipt.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert receipt for transaction "+modelTxn.TransactionID, err)
	}

	// Only completed financial donations credit the campaign; pending ones are
	// credited by ConfirmPaymentCapture when the provider confirms capture.
	if txn.Status == domain.Completed && txn.Type == domain.Financial && txn.CampaignID != nil {
		if err := creditCampaignInTx(ctx, tx, *txn.CampaignID, txn, txn.CreatedBy, txn.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// creditCampaignInTx adds the transaction's amount to the campaign's collected
// amount inside the caller's DB transaction.
func creditCampaignInTx(ctx context.Context, tx pgx.Tx, campaignID string, txn domain.Transaction, updatedBy string, at time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE campaigns
		SET collected_amount = collected_amount + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE campaign_id = $1;
	`, campaignID, txn.Amount, at, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to credit campaign "+campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("campaign " + campaignID + " not found")
	}
	return nil
}

// ConfirmPaymentCapture flips the transaction matching providerRef from pending
// to completed. The status guard in the UPDATE makes the operation idempotent:
// a second confirmation matches zero rows and is reported as flipped=false.
func (r *PgxTransactionRepository) ConfirmPaymentCapture(ctx context.Context, providerRef string, updatedBy string, at time.Time) (*domain.Transaction, bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer r.Rollback(ctx, tx)

	row := tx.QueryRow(ctx, `
		UPDATE transactions
		SET status = 'completed',
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE provider_ref = $1 AND status = 'pending'
		RETURNING `+transactionColumns+`;
	`, providerRef, at, updatedBy)

	modelTxn, err := scanTransaction(row)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, apperrors.NewAppError(500, "failed to confirm capture for "+providerRef, err)
		}
		// Nothing flipped: either the transaction is already completed (fine,
		// idempotent no-op) or the provider reference is unknown.
		existing, findErr := r.FindTransactionByProviderRef(ctx, providerRef)
		if findErr != nil {
			return nil, false, findErr
		}
		return existing, false, nil
	}

	txnDomain := mapping.ToDomainTransaction(*modelTxn)
	if txnDomain.Type == domain.Financial && txnDomain.CampaignID != nil {
		if err := creditCampaignInTx(ctx, tx, *txnDomain.CampaignID, txnDomain, updatedBy, at); err != nil {
			return nil, false, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, false, err
	}
	return &txnDomain, true, nil
}

// FindTransactionByID retrieves a transaction and its items by ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findTransactionWhere(ctx, "transaction_id = $1", transactionID)
}

// FindTransactionByProviderRef retrieves the transaction linked to a payment
// provider reference.
func (r *PgxTransactionRepository) FindTransactionByProviderRef(ctx context.Context, providerRef string) (*domain.Transaction, error) {
	return r.findTransactionWhere(ctx, "provider_ref = $1", providerRef)
}

// FindTransactionByReceiptToken retrieves the transaction carrying the given
// public receipt token.
func (r *PgxTransactionRepository) FindTransactionByReceiptToken(ctx context.Context, receiptToken string) (*domain.Transaction, error) {
	return r.findTransactionWhere(ctx, "receipt = $1", receiptToken)
}

func (r *PgxTransactionRepository) findTransactionWhere(ctx context.Context, whereClause string, arg any) (*domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE " + whereClause + ";"
	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction", err)
	}

	items, err := r.findItems(ctx, modelTxn.TransactionID)
	if err != nil {
		return nil, err
	}
	modelTxn.Items = items

	txnDomain := mapping.ToDomainTransaction(*modelTxn)
	return &txnDomain, nil
}

func (r *PgxTransactionRepository) findItems(ctx context.Context, transactionID string) ([]models.TransactionItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, transaction_id, position, description, estimated_value, image_urls
		FROM transaction_items
		WHERE transaction_id = $1
		ORDER BY position;
	`, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for transaction "+transactionID, err)
	}
	defer rows.Close()

	items := []models.TransactionItem{}
	for rows.Next() {
		var item models.TransactionItem
		if err := rows.Scan(
			&item.ItemID,
			&item.TransactionID,
			&item.Position,
			&item.Description,
			&item.EstimatedValue,
			&item.ImageURLs,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row for transaction "+transactionID, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows for transaction "+transactionID, err)
	}
	return items, nil
}

// ListTransactions retrieves a paginated list of transactions, newest first,
// using token-based pagination over (created_at, transaction_id).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := "SELECT " + transactionColumns + " FROM transactions"
	orderByClause := "ORDER BY created_at DESC, transaction_id DESC"

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := "WHERE (created_at, transaction_id) < ($1, $2)"
		args = append(args, lastCreatedAt, lastID)
		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		newNextToken = &token
	}

	if err := r.attachItems(ctx, modelTxns); err != nil {
		return nil, nil, err
	}
	return mapping.ToDomainTransactionSlice(modelTxns), newNextToken, nil
}

// ListTransactionsByDonorEmail retrieves all transactions for a donor email,
// newest first.
func (r *PgxTransactionRepository) ListTransactionsByDonorEmail(ctx context.Context, email string) ([]domain.Transaction, error) {
	return r.listTransactionsWhere(ctx,
		"WHERE donor_email = $1 ORDER BY created_at DESC, transaction_id DESC", email)
}

// ListCompletedTransactions retrieves completed transactions, newest first,
// capped at limit rows.
func (r *PgxTransactionRepository) ListCompletedTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.listTransactionsWhere(ctx,
		"WHERE status = 'completed' ORDER BY created_at DESC, transaction_id DESC LIMIT $1", limit)
}

func (r *PgxTransactionRepository) listTransactionsWhere(ctx context.Context, clause string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, "SELECT "+transactionColumns+" FROM transactions "+clause+";", args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, modelTxns); err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	modelTxns := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return modelTxns, nil
}

// attachItems loads in-kind items for every in-kind transaction in the slice.
func (r *PgxTransactionRepository) attachItems(ctx context.Context, txns []models.Transaction) error {
	for i := range txns {
		if txns[i].Type != models.InKind {
			continue
		}
		items, err := r.findItems(ctx, txns[i].TransactionID)
		if err != nil {
			return err
		}
		txns[i].Items = items
	}
	return nil
}

// GetFinancialStats aggregates completed financial donations.
func (r *PgxTransactionRepository) GetFinancialStats(ctx context.Context) (*domain.FinancialStats, error) {
	var stats domain.FinancialStats
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0),
		       COUNT(*),
		       COALESCE(AVG(amount), 0)
		FROM transactions
		WHERE type = 'financial' AND status = 'completed';
	`).Scan(&stats.TotalAmount, &stats.DonationCount, &stats.AverageAmount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute financial stats", err)
	}
	return &stats, nil
}

// GetInKindStats aggregates completed in-kind donations.
func (r *PgxTransactionRepository) GetInKindStats(ctx context.Context) (*domain.InKindStats, error) {
	var stats domain.InKindStats
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(i.estimated_value), 0),
		       COUNT(DISTINCT t.transaction_id),
		       COUNT(i.item_id)
		FROM transactions t
		LEFT JOIN transaction_items i ON i.transaction_id = t.transaction_id
		WHERE t.type = 'in-kind' AND t.status = 'completed';
	`).Scan(&stats.TotalEstimatedValue, &stats.DonationCount, &stats.ItemCount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute in-kind stats", err)
	}
	return &stats, nil
}
