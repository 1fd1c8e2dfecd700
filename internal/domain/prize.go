package domain

import (
	"time"

	"github.com/google/uuid"
)

type PrizeStatus string

const (
	PrizeAvailable PrizeStatus = "available"
	PrizeAwarded   PrizeStatus = "awarded"
)

func (s PrizeStatus) IsValid() bool {
	switch s {
	case PrizeAvailable, PrizeAwarded:
		return true
	}
	return false
}

// Prize is a raffle or auction item donated to a club, usually by a sponsor.
type Prize struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	ClubID      uuid.UUID   `json:"club_id" db:"club_id"`
	CampaignID  *uuid.UUID  `json:"campaign_id,omitempty" db:"campaign_id"`
	SponsorID   *uuid.UUID  `json:"sponsor_id,omitempty" db:"sponsor_id"`
	Title       string      `json:"title" db:"title"`
	Description *string     `json:"description,omitempty" db:"description"`
	Value       float64     `json:"value" db:"value"`
	Currency    string      `json:"currency" db:"currency"`
	Status      PrizeStatus `json:"status" db:"status"`
	AwardedTo   *uuid.UUID  `json:"awarded_to,omitempty" db:"awarded_to"`
	AwardedAt   *time.Time  `json:"awarded_at,omitempty" db:"awarded_at"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time  `json:"-" db:"deleted_at"`
}

type CreatePrizeInput struct {
	ClubID      uuid.UUID  `json:"club_id" validate:"required"`
	CampaignID  *uuid.UUID `json:"campaign_id,omitempty"`
	SponsorID   *uuid.UUID `json:"sponsor_id,omitempty"`
	Title       string     `json:"title" validate:"required,max=150"`
	Description *string    `json:"description,omitempty"`
	Value       float64    `json:"value" validate:"gte=0"`
	Currency    string     `json:"currency" validate:"required,len=3"`
}

type UpdatePrizeInput struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,max=150"`
	Description NullableString `json:"description"`
	Value       *float64       `json:"value,omitempty" validate:"omitempty,gte=0"`
	SponsorID   *uuid.UUID     `json:"sponsor_id,omitempty"`
}

type AwardPrizeInput struct {
	SupporterID uuid.UUID `json:"supporter_id" validate:"required"`
}
