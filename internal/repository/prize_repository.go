package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubraise/internal/domain"
)

type PrizeRepository interface {
	Create(ctx context.Context, prize *domain.Prize) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prize, error)
	Update(ctx context.Context, prize *domain.Prize) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) ([]domain.Prize, int64, error)
	Award(ctx context.Context, id, supporterID uuid.UUID, awardedAt time.Time) error
}

type prizeRepository struct {
	db *sqlx.DB
}

func NewPrizeRepository(db *sqlx.DB) PrizeRepository {
	return &prizeRepository{db: db}
}

func (r *prizeRepository) Create(ctx context.Context, prize *domain.Prize) error {
	query := `
		INSERT INTO prizes (id, club_id, campaign_id, sponsor_id, title, description, value, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		prize.ID, prize.ClubID, prize.CampaignID, prize.SponsorID, prize.Title,
		prize.Description, prize.Value, prize.Currency, prize.Status,
	).Scan(&prize.CreatedAt, &prize.UpdatedAt)
}

func (r *prizeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prize, error) {
	var prize domain.Prize
	query := `SELECT * FROM prizes WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &prize, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prize, nil
}

func (r *prizeRepository) Update(ctx context.Context, prize *domain.Prize) error {
	query := `
		UPDATE prizes
		SET title = $2, description = $3, value = $4, sponsor_id = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		prize.ID, prize.Title, prize.Description, prize.Value, prize.SponsorID,
	).Scan(&prize.UpdatedAt)
}

func (r *prizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE prizes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *prizeRepository) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) ([]domain.Prize, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM prizes WHERE club_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, clubID); err != nil {
		return nil, 0, err
	}

	var prizes []domain.Prize
	query := `SELECT * FROM prizes WHERE club_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &prizes, query, clubID, params.PageSize, params.Offset())
	return prizes, total, err
}

func (r *prizeRepository) Award(ctx context.Context, id, supporterID uuid.UUID, awardedAt time.Time) error {
	query := `
		UPDATE prizes
		SET status = 'awarded', awarded_to = $2, awarded_at = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'available' AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id, supporterID, awardedAt)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("prize already awarded or missing")
	}
	return nil
}
