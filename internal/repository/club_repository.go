package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubraise/internal/domain"
)

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Club, error)
	Update(ctx context.Context, club *domain.Club) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Club, int64, error)
}

type clubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	query := `
		INSERT INTO clubs (id, name, slug, org_type, description, website, logo_url, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		club.ID, club.Name, club.Slug, club.OrgType, club.Description, club.Website,
		club.LogoURL, club.OwnerID,
	).Scan(&club.CreatedAt, &club.UpdatedAt)
}

func (r *clubRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	var club domain.Club
	query := `SELECT * FROM clubs WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &club, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetBySlug(ctx context.Context, slug string) (*domain.Club, error) {
	var club domain.Club
	query := `SELECT * FROM clubs WHERE slug = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &club, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) Update(ctx context.Context, club *domain.Club) error {
	query := `
		UPDATE clubs
		SET name = $2, org_type = $3, description = $4, website = $5, logo_url = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		club.ID, club.Name, club.OrgType, club.Description, club.Website, club.LogoURL,
	).Scan(&club.UpdatedAt)
}

func (r *clubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE clubs SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *clubRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Club, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM clubs WHERE deleted_at IS NULL`); err != nil {
		return nil, 0, err
	}

	var clubs []domain.Club
	query := `SELECT * FROM clubs WHERE deleted_at IS NULL ORDER BY name ASC LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &clubs, query, params.PageSize, params.Offset())
	return clubs, total, err
}
