package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/domain"
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	"github.com/transparify/transparify_backend/internal/models"
	"github.com/transparify/transparify_backend/internal/utils/mapping"
	"github.com/transparify/transparify_backend/internal/utils/pagination"
)

type PgxCampaignRepository struct {
	BaseRepository
}

// newPgxCampaignRepository creates a new repository for campaign data.
func newPgxCampaignRepository(pool *pgxpool.Pool) portsrepo.CampaignRepositoryWithTx {
	return &PgxCampaignRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCampaignRepository implements portsrepo.CampaignRepositoryWithTx
var _ portsrepo.CampaignRepositoryWithTx = (*PgxCampaignRepository)(nil)

const campaignColumns = `
	campaign_id, ngo_id, title, description, goal_amount, collected_amount,
	start_date, end_date, status, banner_url, created_at, created_by,
	last_updated_at, last_updated_by
`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.CampaignID,
		&c.NGOID,
		&c.Title,
		&c.Description,
		&c.GoalAmount,
		&c.CollectedAmount,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.BannerURL,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCampaign persists a new campaign.
func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	modelCampaign := mapping.ToModelCampaign(campaign)
	query := `
		INSERT INTO campaigns (
			campaign_id, ngo_id, title, description, goal_amount, collected_amount,
			start_date, end_date, status, banner_url, created_at, created_by,
			last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCampaign.CampaignID,
		modelCampaign.NGOID,
		modelCampaign.Title,
		modelCampaign.Description,
		modelCampaign.GoalAmount,
		modelCampaign.CollectedAmount,
		modelCampaign.StartDate,
		modelCampaign.EndDate,
		modelCampaign.Status,
		modelCampaign.BannerURL,
		modelCampaign.CreatedAt,
		modelCampaign.CreatedBy,
		modelCampaign.LastUpdatedAt,
		modelCampaign.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert campaign "+modelCampaign.CampaignID, err)
	}
	return nil
}

// UpdateCampaign updates mutable campaign fields. The collected amount is
// deliberately not updatable here; only donation crediting touches it.
func (r *PgxCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	modelCampaign := mapping.ToModelCampaign(campaign)
	query := `
		UPDATE campaigns
		SET title = $2, description = $3, goal_amount = $4, start_date = $5,
		    end_date = $6, status = $7, banner_url = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE campaign_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelCampaign.CampaignID,
		modelCampaign.Title,
		modelCampaign.Description,
		modelCampaign.GoalAmount,
		modelCampaign.StartDate,
		modelCampaign.EndDate,
		modelCampaign.Status,
		modelCampaign.BannerURL,
		modelCampaign.LastUpdatedAt,
		modelCampaign.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update campaign "+modelCampaign.CampaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCampaignByID retrieves a campaign by its ID.
func (r *PgxCampaignRepository) FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query := "SELECT " + campaignColumns + " FROM campaigns WHERE campaign_id = $1;"
	modelCampaign, err := scanCampaign(r.Pool.QueryRow(ctx, query, campaignID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find campaign by ID "+campaignID, err)
	}
	campaignDomain := mapping.ToDomainCampaign(*modelCampaign)
	return &campaignDomain, nil
}

// ListCampaigns retrieves a paginated list of campaigns, newest first, using
// token-based pagination over (created_at, campaign_id).
func (r *PgxCampaignRepository) ListCampaigns(ctx context.Context, limit int, nextToken *string) ([]domain.Campaign, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := "SELECT " + campaignColumns + " FROM campaigns"
	orderByClause := "ORDER BY created_at DESC, campaign_id DESC"

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := "WHERE (created_at, campaign_id) < ($1, $2)"
		args = append(args, lastCreatedAt, lastID)
		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query campaigns", err)
	}
	defer rows.Close()

	modelCampaigns := []models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan campaign row", err)
		}
		modelCampaigns = append(modelCampaigns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating campaign rows", err)
	}

	var newNextToken *string
	if len(modelCampaigns) > limit {
		modelCampaigns = modelCampaigns[:limit]
		last := modelCampaigns[len(modelCampaigns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.CampaignID)
		newNextToken = &token
	}

	return mapping.ToDomainCampaignSlice(modelCampaigns), newNextToken, nil
}

// ListCampaignsByStatus retrieves campaigns in the given status, newest first.
func (r *PgxCampaignRepository) ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus, limit int) ([]domain.Campaign, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.Pool.Query(ctx,
		"SELECT "+campaignColumns+" FROM campaigns WHERE status = $1 ORDER BY created_at DESC, campaign_id DESC LIMIT $2;",
		string(status), limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query campaigns by status", err)
	}
	defer rows.Close()

	modelCampaigns := []models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan campaign row", err)
		}
		modelCampaigns = append(modelCampaigns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating campaign rows", err)
	}
	return mapping.ToDomainCampaignSlice(modelCampaigns), nil
}
