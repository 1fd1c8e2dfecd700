package domain

import (
	"time"

	"github.com/google/uuid"
)

type SupporterType string

const (
	SupporterDonor     SupporterType = "donor"
	SupporterVolunteer SupporterType = "volunteer"
	SupporterSponsor   SupporterType = "sponsor"
)

func (t SupporterType) IsValid() bool {
	switch t {
	case SupporterDonor, SupporterVolunteer, SupporterSponsor:
		return true
	}
	return false
}

// Supporter is a donor, volunteer or sponsor attached to a club.
type Supporter struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	ClubID       uuid.UUID     `json:"club_id" db:"club_id"`
	Type         SupporterType `json:"type" db:"type"`
	FullName     string        `json:"full_name" db:"full_name"`
	Email        *string       `json:"email,omitempty" db:"email"`
	Phone        *string       `json:"phone,omitempty" db:"phone"`
	Organisation *string       `json:"organisation,omitempty" db:"organisation"`
	TotalDonated float64       `json:"total_donated" db:"total_donated"`
	Notes        *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time    `json:"-" db:"deleted_at"`
}

type CreateSupporterInput struct {
	ClubID       uuid.UUID     `json:"club_id" validate:"required"`
	Type         SupporterType `json:"type" validate:"required"`
	FullName     string        `json:"full_name" validate:"required,min=2,max=120"`
	Email        *string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string       `json:"phone,omitempty" validate:"omitempty,max=30"`
	Organisation *string       `json:"organisation,omitempty" validate:"omitempty,max=120"`
	Notes        *string       `json:"notes,omitempty"`
}

type UpdateSupporterInput struct {
	Type         *SupporterType `json:"type,omitempty"`
	FullName     *string        `json:"full_name,omitempty" validate:"omitempty,min=2,max=120"`
	Email        NullableString `json:"email" validate:"omitempty,email"`
	Phone        NullableString `json:"phone"`
	Organisation NullableString `json:"organisation"`
	TotalDonated *float64       `json:"total_donated,omitempty" validate:"omitempty,gte=0"`
	Notes        NullableString `json:"notes"`
}

// SupporterFilter narrows club supporter listings.
type SupporterFilter struct {
	Type   *SupporterType
	Search string
}
