package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubraise/internal/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, kind *domain.MediaKind, params domain.PaginationParams) ([]domain.Media, int64, error)
}

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (id, club_id, uploaded_by, kind, file_name, file_size, mime_type, storage_path, caption)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		media.ID, media.ClubID, media.UploadedBy, media.Kind, media.FileName,
		media.FileSize, media.MimeType, media.StoragePath, media.Caption,
	).Scan(&media.CreatedAt)
}

func (r *mediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	query := `SELECT * FROM media WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE media SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *mediaRepository) ListByClub(ctx context.Context, clubID uuid.UUID, kind *domain.MediaKind, params domain.PaginationParams) ([]domain.Media, int64, error) {
	params.Validate()

	var total int64
	var mediaList []domain.Media

	if kind != nil {
		countQuery := `SELECT COUNT(*) FROM media WHERE club_id = $1 AND kind = $2 AND deleted_at IS NULL`
		if err := r.db.GetContext(ctx, &total, countQuery, clubID, *kind); err != nil {
			return nil, 0, err
		}
		query := `SELECT * FROM media WHERE club_id = $1 AND kind = $2 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT $3 OFFSET $4`
		err := r.db.SelectContext(ctx, &mediaList, query, clubID, *kind, params.PageSize, params.Offset())
		return mediaList, total, err
	}

	countQuery := `SELECT COUNT(*) FROM media WHERE club_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, clubID); err != nil {
		return nil, 0, err
	}
	query := `SELECT * FROM media WHERE club_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &mediaList, query, clubID, params.PageSize, params.Offset())
	return mediaList, total, err
}
