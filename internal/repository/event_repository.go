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

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) ([]domain.Event, int64, error)
	ListEndedByClub(ctx context.Context, clubID uuid.UUID, endedBefore time.Time) ([]domain.Event, error)
	CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error)
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, club_id, campaign_id, title, description, venue, starts_at, ends_at, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		event.ID, event.ClubID, event.CampaignID, event.Title, event.Description,
		event.Venue, event.StartsAt, event.EndsAt, event.Status, event.CreatedBy,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, venue = $4, starts_at = $5, ends_at = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		event.ID, event.Title, event.Description, event.Venue, event.StartsAt, event.EndsAt, event.Status,
	).Scan(&event.UpdatedAt)
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE events SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *eventRepository) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) ([]domain.Event, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM events WHERE club_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, clubID); err != nil {
		return nil, 0, err
	}

	var events []domain.Event
	query := `SELECT * FROM events WHERE club_id = $1 AND deleted_at IS NULL ORDER BY starts_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &events, query, clubID, params.PageSize, params.Offset())
	return events, total, err
}

// ListEndedByClub returns non-cancelled events that finished before the cutoff,
// oldest first. The trust gate uses it to find events owing an impact report.
func (r *eventRepository) ListEndedByClub(ctx context.Context, clubID uuid.UUID, endedBefore time.Time) ([]domain.Event, error) {
	var events []domain.Event
	query := `
		SELECT * FROM events
		WHERE club_id = $1 AND ends_at < $2 AND status != 'cancelled' AND deleted_at IS NULL
		ORDER BY ends_at ASC`
	err := r.db.SelectContext(ctx, &events, query, clubID, endedBefore)
	return events, err
}

func (r *eventRepository) CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM events WHERE club_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query, clubID)
	return count, err
}
