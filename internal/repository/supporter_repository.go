package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubraise/internal/domain"
)

type SupporterRepository interface {
	Create(ctx context.Context, supporter *domain.Supporter) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supporter, error)
	Update(ctx context.Context, supporter *domain.Supporter) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.SupporterFilter, params domain.PaginationParams) ([]domain.Supporter, int64, error)
	ListAllByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Supporter, error)
	CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error)
}

type supporterRepository struct {
	db *sqlx.DB
}

func NewSupporterRepository(db *sqlx.DB) SupporterRepository {
	return &supporterRepository{db: db}
}

func (r *supporterRepository) Create(ctx context.Context, supporter *domain.Supporter) error {
	query := `
		INSERT INTO supporters (id, club_id, type, full_name, email, phone, organisation, total_donated, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		supporter.ID, supporter.ClubID, supporter.Type, supporter.FullName, supporter.Email,
		supporter.Phone, supporter.Organisation, supporter.TotalDonated, supporter.Notes,
	).Scan(&supporter.CreatedAt, &supporter.UpdatedAt)
}

func (r *supporterRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supporter, error) {
	var supporter domain.Supporter
	query := `SELECT * FROM supporters WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &supporter, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supporter, nil
}

func (r *supporterRepository) Update(ctx context.Context, supporter *domain.Supporter) error {
	query := `
		UPDATE supporters
		SET type = $2, full_name = $3, email = $4, phone = $5, organisation = $6, total_donated = $7, notes = $8, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		supporter.ID, supporter.Type, supporter.FullName, supporter.Email, supporter.Phone,
		supporter.Organisation, supporter.TotalDonated, supporter.Notes,
	).Scan(&supporter.UpdatedAt)
}

func (r *supporterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE supporters SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *supporterRepository) ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.SupporterFilter, params domain.PaginationParams) ([]domain.Supporter, int64, error) {
	params.Validate()

	where := `WHERE club_id = $1 AND deleted_at IS NULL`
	args := []interface{}{clubID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		where += ` AND type = $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (full_name ILIKE $` + n + ` OR organisation ILIKE $` + n + `)`
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM supporters `+where, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := `SELECT * FROM supporters ` + where +
		` ORDER BY full_name ASC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	var supporters []domain.Supporter
	err := r.db.SelectContext(ctx, &supporters, query, args...)
	return supporters, total, err
}

func (r *supporterRepository) ListAllByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Supporter, error) {
	var supporters []domain.Supporter
	query := `SELECT * FROM supporters WHERE club_id = $1 AND deleted_at IS NULL ORDER BY full_name ASC`
	err := r.db.SelectContext(ctx, &supporters, query, clubID)
	return supporters, err
}

func (r *supporterRepository) CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM supporters WHERE club_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query, clubID)
	return count, err
}
