package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubraise/internal/domain"
)

type ImpactRepository interface {
	Create(ctx context.Context, update *domain.ImpactUpdate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ImpactUpdate, error)
	Update(ctx context.Context, update *domain.ImpactUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByEvent(ctx context.Context, eventID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error)
	ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.ImpactFilter, params domain.PaginationParams) ([]domain.ImpactUpdate, int64, error)
	ListAllByClub(ctx context.Context, clubID uuid.UUID) ([]domain.ImpactUpdate, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ImpactStatus, publishedAt *time.Time) error
	SetFinal(ctx context.Context, id uuid.UUID, finalizedAt time.Time) error
	HasFinalForEvent(ctx context.Context, eventID uuid.UUID) (bool, error)
	CountPublishedForEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
	CountPublishedForClub(ctx context.Context, clubID uuid.UUID) (int64, error)
}

type impactRepository struct {
	db *sqlx.DB
}

func NewImpactRepository(db *sqlx.DB) ImpactRepository {
	return &impactRepository{db: db}
}

func (r *impactRepository) Create(ctx context.Context, update *domain.ImpactUpdate) error {
	query := `
		INSERT INTO impact_updates (
			id, club_id, event_id, campaign_id, impact_area_ids, title, description,
			impact_date, metrics, amount_spent, currency, location, proof, status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		update.ID, update.ClubID, update.EventID, update.CampaignID, update.ImpactAreaIDs,
		update.Title, update.Description, update.ImpactDate, update.Metrics,
		update.AmountSpent, update.Currency, update.Location, update.Proof,
		update.Status, update.CreatedBy,
	).Scan(&update.CreatedAt, &update.UpdatedAt)
}

func (r *impactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImpactUpdate, error) {
	var update domain.ImpactUpdate
	query := `SELECT * FROM impact_updates WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &update, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &update, nil
}

func (r *impactRepository) Update(ctx context.Context, update *domain.ImpactUpdate) error {
	query := `
		UPDATE impact_updates
		SET impact_area_ids = $2, title = $3, description = $4, impact_date = $5,
		    metrics = $6, amount_spent = $7, currency = $8, location = $9, proof = $10,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		update.ID, update.ImpactAreaIDs, update.Title, update.Description, update.ImpactDate,
		update.Metrics, update.AmountSpent, update.Currency, update.Location, update.Proof,
	).Scan(&update.UpdatedAt)
}

func (r *impactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE impact_updates SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *impactRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error) {
	var updates []domain.ImpactUpdate
	if status != nil {
		query := `SELECT * FROM impact_updates WHERE event_id = $1 AND status = $2 AND deleted_at IS NULL ORDER BY impact_date DESC`
		err := r.db.SelectContext(ctx, &updates, query, eventID, *status)
		return updates, err
	}
	query := `SELECT * FROM impact_updates WHERE event_id = $1 AND deleted_at IS NULL ORDER BY impact_date DESC`
	err := r.db.SelectContext(ctx, &updates, query, eventID)
	return updates, err
}

func (r *impactRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error) {
	var updates []domain.ImpactUpdate
	if status != nil {
		query := `SELECT * FROM impact_updates WHERE campaign_id = $1 AND status = $2 AND deleted_at IS NULL ORDER BY impact_date DESC`
		err := r.db.SelectContext(ctx, &updates, query, campaignID, *status)
		return updates, err
	}
	query := `SELECT * FROM impact_updates WHERE campaign_id = $1 AND deleted_at IS NULL ORDER BY impact_date DESC`
	err := r.db.SelectContext(ctx, &updates, query, campaignID)
	return updates, err
}

func (r *impactRepository) ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.ImpactFilter, params domain.PaginationParams) ([]domain.ImpactUpdate, int64, error) {
	params.Validate()

	where := `WHERE club_id = $1 AND deleted_at IS NULL`
	args := []interface{}{clubID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		where += ` AND event_id = $` + strconv.Itoa(len(args))
	}
	if filter.CampaignID != nil {
		args = append(args, *filter.CampaignID)
		where += ` AND campaign_id = $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM impact_updates `+where, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := `SELECT * FROM impact_updates ` + where +
		` ORDER BY impact_date DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	var updates []domain.ImpactUpdate
	err := r.db.SelectContext(ctx, &updates, query, args...)
	return updates, total, err
}

func (r *impactRepository) ListAllByClub(ctx context.Context, clubID uuid.UUID) ([]domain.ImpactUpdate, error) {
	var updates []domain.ImpactUpdate
	query := `SELECT * FROM impact_updates WHERE club_id = $1 AND deleted_at IS NULL ORDER BY impact_date DESC`
	err := r.db.SelectContext(ctx, &updates, query, clubID)
	return updates, err
}

func (r *impactRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.ImpactStatus, publishedAt *time.Time) error {
	if publishedAt != nil {
		query := `UPDATE impact_updates SET status = $2, published_at = $3, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
		_, err := r.db.ExecContext(ctx, query, id, status, *publishedAt)
		return err
	}
	query := `UPDATE impact_updates SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *impactRepository) SetFinal(ctx context.Context, id uuid.UUID, finalizedAt time.Time) error {
	query := `UPDATE impact_updates SET is_final = true, finalized_at = $2, updated_at = NOW() WHERE id = $1 AND is_final = false AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id, finalizedAt)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("impact update already final or missing")
	}
	return nil
}

func (r *impactRepository) HasFinalForEvent(ctx context.Context, eventID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM impact_updates WHERE event_id = $1 AND is_final = true AND deleted_at IS NULL)`
	err := r.db.GetContext(ctx, &exists, query, eventID)
	return exists, err
}

func (r *impactRepository) CountPublishedForEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM impact_updates WHERE event_id = $1 AND status IN ('published', 'verified') AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query, eventID)
	return count, err
}

func (r *impactRepository) CountPublishedForClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM impact_updates WHERE club_id = $1 AND status IN ('published', 'verified') AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query, clubID)
	return count, err
}
