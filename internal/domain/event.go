package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventScheduled, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// Event is a fundraising event run by a club, optionally under a campaign.
type Event struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	ClubID      uuid.UUID   `json:"club_id" db:"club_id"`
	CampaignID  *uuid.UUID  `json:"campaign_id,omitempty" db:"campaign_id"`
	Title       string      `json:"title" db:"title"`
	Description *string     `json:"description,omitempty" db:"description"`
	Venue       *string     `json:"venue,omitempty" db:"venue"`
	StartsAt    time.Time   `json:"starts_at" db:"starts_at"`
	EndsAt      time.Time   `json:"ends_at" db:"ends_at"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedBy   uuid.UUID   `json:"created_by" db:"created_by"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time  `json:"-" db:"deleted_at"`
}

// Ended reports whether the event finished before the given instant.
func (e *Event) Ended(now time.Time) bool {
	return e.Status != EventCancelled && e.EndsAt.Before(now)
}

type CreateEventInput struct {
	ClubID      uuid.UUID  `json:"club_id" validate:"required"`
	CampaignID  *uuid.UUID `json:"campaign_id,omitempty"`
	Title       string     `json:"title" validate:"required,max=150"`
	Description *string    `json:"description,omitempty"`
	Venue       *string    `json:"venue,omitempty" validate:"omitempty,max=200"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      time.Time  `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

type UpdateEventInput struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,max=150"`
	Description NullableString `json:"description"`
	Venue       NullableString `json:"venue" validate:"omitempty,max=200"`
	StartsAt    *time.Time     `json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	Status      *EventStatus   `json:"status,omitempty"`
}
