package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrgType classifies the organisation behind a club account. It drives which
// impact areas are offered.
type OrgType string

const (
	OrgClub    OrgType = "club"
	OrgSchool  OrgType = "school"
	OrgCharity OrgType = "charity"
	OrgCause   OrgType = "cause"
)

func (t OrgType) IsValid() bool {
	switch t {
	case OrgClub, OrgSchool, OrgCharity, OrgCause:
		return true
	}
	return false
}

type Club struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Slug        string     `json:"slug" db:"slug"`
	OrgType     OrgType    `json:"org_type" db:"org_type"`
	Description *string    `json:"description,omitempty" db:"description"`
	Website     *string    `json:"website,omitempty" db:"website"`
	LogoURL     *string    `json:"logo_url,omitempty" db:"logo_url"`
	OwnerID     uuid.UUID  `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`
}

type CreateClubInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Slug        string  `json:"slug" validate:"required,min=2,max=60"`
	OrgType     OrgType `json:"org_type" validate:"required"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
}

type UpdateClubInput struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	OrgType     *OrgType       `json:"org_type,omitempty"`
	Description NullableString `json:"description"`
	Website     NullableString `json:"website"`
	LogoURL     NullableString `json:"logo_url"`
}
