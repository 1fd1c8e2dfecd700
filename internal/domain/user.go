package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                      uuid.UUID  `json:"id" db:"id"`
	Email                   string     `json:"email" db:"email"`
	PasswordHash            string     `json:"-" db:"password_hash"`
	FullName                string     `json:"full_name" db:"full_name"`
	Role                    string     `json:"role" db:"role"`
	ClubID                  *uuid.UUID `json:"club_id,omitempty" db:"club_id"`
	IsActive                bool       `json:"is_active" db:"is_active"`
	IsEmailVerified         bool       `json:"is_email_verified" db:"is_email_verified"`
	EmailVerificationToken  *string    `json:"-" db:"email_verification_token"`
	EmailVerificationSentAt *time.Time `json:"-" db:"email_verification_sent_at"`
	PasswordResetToken      *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt  *time.Time `json:"-" db:"password_reset_expires_at"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt               *time.Time `json:"-" db:"deleted_at"`
}

type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Role     string `json:"role" validate:"omitempty,oneof=member host admin"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AssignRoleInput struct {
	UserID uuid.UUID  `json:"user_id" validate:"required"`
	Role   string     `json:"role" validate:"required,oneof=member host admin"`
	ClubID *uuid.UUID `json:"club_id,omitempty"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleHost   UserRole = "host"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleMember, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

// HasRole implements the member < host < admin hierarchy.
func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case "admin":
		return u.Role == "admin"
	case "host":
		return u.Role == "host" || u.Role == "admin"
	case "member":
		return u.Role == "member" || u.Role == "host" || u.Role == "admin"
	default:
		return false
	}
}

// CanManageImpact reports whether the user may create, edit, publish or
// finalize impact updates for the given club. Admins manage any club; hosts
// only their own.
func (u *User) CanManageImpact(clubID uuid.UUID) bool {
	if u.Role == "admin" {
		return true
	}
	return u.Role == "host" && u.ClubID != nil && *u.ClubID == clubID
}
