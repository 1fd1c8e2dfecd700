package domain

import (
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignArchived  CampaignStatus = "archived"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignActive, CampaignCompleted, CampaignArchived:
		return true
	}
	return false
}

type Campaign struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	ClubID       uuid.UUID      `json:"club_id" db:"club_id"`
	Title        string         `json:"title" db:"title"`
	Description  *string        `json:"description,omitempty" db:"description"`
	GoalAmount   float64        `json:"goal_amount" db:"goal_amount"`
	RaisedAmount float64        `json:"raised_amount" db:"raised_amount"`
	Currency     string         `json:"currency" db:"currency"`
	Status       CampaignStatus `json:"status" db:"status"`
	StartsAt     *time.Time     `json:"starts_at,omitempty" db:"starts_at"`
	EndsAt       *time.Time     `json:"ends_at,omitempty" db:"ends_at"`
	CreatedBy    uuid.UUID      `json:"created_by" db:"created_by"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time     `json:"-" db:"deleted_at"`
}

type CreateCampaignInput struct {
	ClubID      uuid.UUID  `json:"club_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=150"`
	Description *string    `json:"description,omitempty"`
	GoalAmount  float64    `json:"goal_amount" validate:"required,gt=0"`
	Currency    string     `json:"currency" validate:"required,len=3"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

type UpdateCampaignInput struct {
	Title       *string         `json:"title,omitempty" validate:"omitempty,max=150"`
	Description NullableString  `json:"description"`
	GoalAmount  *float64        `json:"goal_amount,omitempty" validate:"omitempty,gt=0"`
	Status      *CampaignStatus `json:"status,omitempty"`
	StartsAt    NullableTime    `json:"starts_at"`
	EndsAt      NullableTime    `json:"ends_at"`
}
