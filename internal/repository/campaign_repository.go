package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubraise/internal/domain"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) ([]domain.Campaign, int64, error)
	CountByClub(ctx context.Context, clubID uuid.UUID) (total, active int64, err error)
	SumRaisedByClub(ctx context.Context, clubID uuid.UUID) (float64, error)
}

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		INSERT INTO campaigns (id, club_id, title, description, goal_amount, currency, status, starts_at, ends_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		campaign.ID, campaign.ClubID, campaign.Title, campaign.Description, campaign.GoalAmount,
		campaign.Currency, campaign.Status, campaign.StartsAt, campaign.EndsAt, campaign.CreatedBy,
	).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *campaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var campaign domain.Campaign
	query := `SELECT * FROM campaigns WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &campaign, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		UPDATE campaigns
		SET title = $2, description = $3, goal_amount = $4, status = $5, starts_at = $6, ends_at = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		campaign.ID, campaign.Title, campaign.Description, campaign.GoalAmount,
		campaign.Status, campaign.StartsAt, campaign.EndsAt,
	).Scan(&campaign.UpdatedAt)
}

func (r *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE campaigns SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *campaignRepository) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) ([]domain.Campaign, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM campaigns WHERE club_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, clubID); err != nil {
		return nil, 0, err
	}

	var campaigns []domain.Campaign
	query := `SELECT * FROM campaigns WHERE club_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &campaigns, query, clubID, params.PageSize, params.Offset())
	return campaigns, total, err
}

func (r *campaignRepository) CountByClub(ctx context.Context, clubID uuid.UUID) (int64, int64, error) {
	var counts struct {
		Total  int64 `db:"total"`
		Active int64 `db:"active"`
	}
	query := `
		SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE status = 'active') AS active
		FROM campaigns WHERE club_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &counts, query, clubID)
	return counts.Total, counts.Active, err
}

func (r *campaignRepository) SumRaisedByClub(ctx context.Context, clubID uuid.UUID) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(raised_amount), 0) FROM campaigns WHERE club_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &sum, query, clubID)
	return sum, err
}
