package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`
	ClubID     *uuid.UUID      `json:"club_id,omitempty" db:"club_id"`
	Action     string          `json:"action" db:"action"`
	EntityType string          `json:"entity_type" db:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id" db:"entity_id"`
	OldValue   json.RawMessage `json:"old_value,omitempty" db:"old_value"`
	NewValue   json.RawMessage `json:"new_value,omitempty" db:"new_value"`
	IPAddress  *string         `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent  *string         `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// Audited actions for the impact lifecycle.
const (
	AuditPublishImpact  = "PUBLISH_IMPACT"
	AuditFinalizeImpact = "FINALIZE_IMPACT"
	AuditVerifyImpact   = "VERIFY_IMPACT"
	AuditFlagImpact     = "FLAG_IMPACT"
	AuditDeleteImpact   = "DELETE_IMPACT"
	AuditAwardPrize     = "AWARD_PRIZE"
)
