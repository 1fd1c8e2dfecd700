package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ImpactStatus is the lifecycle state of an impact update. Transitions are
// one-directional: draft -> published -> verified. Flagged is reachable from
// published or verified by a moderator. Only drafts are editable.
type ImpactStatus string

const (
	ImpactDraft     ImpactStatus = "draft"
	ImpactPublished ImpactStatus = "published"
	ImpactVerified  ImpactStatus = "verified"
	ImpactFlagged   ImpactStatus = "flagged"
)

func (s ImpactStatus) IsValid() bool {
	switch s {
	case ImpactDraft, ImpactPublished, ImpactVerified, ImpactFlagged:
		return true
	}
	return false
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type MediaItem struct {
	Type    MediaType `json:"type"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
}

type Testimonial struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution"`
	Role        string `json:"role,omitempty"`
}

// ProofBundle holds the evidence attached to an impact update. Stored as a
// single JSONB column.
type ProofBundle struct {
	Receipts     []string      `json:"receipts"`
	Invoices     []string      `json:"invoices"`
	Testimonials []Testimonial `json:"testimonials"`
	Media        []MediaItem   `json:"media"`
}

func (p ProofBundle) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ProofBundle) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = ProofBundle{}
		return nil
	}
	return fmt.Errorf("unsupported proof bundle source type %T", src)
}

// HasAny reports whether the bundle contains any evidence at all.
func (p ProofBundle) HasAny() bool {
	return len(p.Receipts) > 0 || len(p.Invoices) > 0 || len(p.Testimonials) > 0 || len(p.Media) > 0
}

// HasFinancialProof reports whether at least one receipt or invoice is attached.
func (p ProofBundle) HasFinancialProof() bool {
	return len(p.Receipts) > 0 || len(p.Invoices) > 0
}

// Metric is a named milestone, e.g. "Families fed" = 120.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

type Metrics []Metric

func (m Metrics) Value() (driver.Value, error) {
	if m == nil {
		m = Metrics{}
	}
	return json.Marshal(m)
}

func (m *Metrics) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	}
	return fmt.Errorf("unsupported metrics source type %T", src)
}

// CountWithValue returns the number of metrics with a value greater than zero.
func (m Metrics) CountWithValue() int {
	n := 0
	for _, metric := range m {
		if metric.Value > 0 {
			n++
		}
	}
	return n
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Place     string  `json:"place,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = Location{}
		return nil
	}
	return fmt.Errorf("unsupported location source type %T", src)
}

// ImpactUpdate is a report of real-world impact tied to an event and/or a
// campaign. At least one of EventID/CampaignID is always set.
type ImpactUpdate struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	ClubID        uuid.UUID    `json:"club_id" db:"club_id"`
	EventID       *uuid.UUID   `json:"event_id,omitempty" db:"event_id"`
	CampaignID    *uuid.UUID   `json:"campaign_id,omitempty" db:"campaign_id"`
	ImpactAreaIDs ImpactAreaIDs `json:"impact_area_ids" db:"impact_area_ids"`
	Title         string       `json:"title" db:"title"`
	Description   string       `json:"description" db:"description"`
	ImpactDate    time.Time    `json:"impact_date" db:"impact_date"`
	Metrics       Metrics      `json:"metrics" db:"metrics"`
	AmountSpent   *float64     `json:"amount_spent,omitempty" db:"amount_spent"`
	Currency      *string      `json:"currency,omitempty" db:"currency"`
	Location      *Location    `json:"location,omitempty" db:"location"`
	Proof         ProofBundle  `json:"proof" db:"proof"`
	Status        ImpactStatus `json:"status" db:"status"`
	IsFinal       bool         `json:"is_final" db:"is_final"`
	CreatedBy     uuid.UUID    `json:"created_by" db:"created_by"`
	PublishedAt   *time.Time   `json:"published_at,omitempty" db:"published_at"`
	FinalizedAt   *time.Time   `json:"finalized_at,omitempty" db:"finalized_at"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time   `json:"-" db:"deleted_at"`
}

// SpentAmount returns the recorded spend, zero when unset.
func (u *ImpactUpdate) SpentAmount() float64 {
	if u.AmountSpent == nil {
		return 0
	}
	return *u.AmountSpent
}

// CountsTowardScore reports whether the record participates in reputation
// scoring. Drafts and flagged records are excluded.
func (u *ImpactUpdate) CountsTowardScore() bool {
	return u.Status == ImpactPublished || u.Status == ImpactVerified
}

// Editable reports whether end users may still mutate or delete the record.
func (u *ImpactUpdate) Editable() bool {
	return u.Status == ImpactDraft && !u.IsFinal
}

type ImpactAreaIDs []string

func (a ImpactAreaIDs) Value() (driver.Value, error) {
	if a == nil {
		a = ImpactAreaIDs{}
	}
	return json.Marshal(a)
}

func (a *ImpactAreaIDs) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	}
	return fmt.Errorf("unsupported impact area source type %T", src)
}

type CreateImpactInput struct {
	ClubID        uuid.UUID     `json:"club_id" validate:"required"`
	EventID       *uuid.UUID    `json:"event_id,omitempty"`
	CampaignID    *uuid.UUID    `json:"campaign_id,omitempty"`
	ImpactAreaIDs ImpactAreaIDs `json:"impact_area_ids" validate:"required,min=1,max=3"`
	Title         string        `json:"title" validate:"required,max=150"`
	Description   string        `json:"description" validate:"required"`
	ImpactDate    time.Time     `json:"impact_date" validate:"required"`
	Metrics       Metrics       `json:"metrics" validate:"required,min=1"`
	AmountSpent   *float64      `json:"amount_spent,omitempty"`
	Currency      *string       `json:"currency,omitempty" validate:"omitempty,len=3"`
	Location      *Location     `json:"location,omitempty"`
	Proof         ProofBundle   `json:"proof"`
}

type UpdateImpactInput struct {
	ImpactAreaIDs ImpactAreaIDs `json:"impact_area_ids,omitempty"`
	Title         *string       `json:"title,omitempty" validate:"omitempty,max=150"`
	Description   *string       `json:"description,omitempty"`
	ImpactDate    *time.Time    `json:"impact_date,omitempty"`
	Metrics       Metrics       `json:"metrics,omitempty"`
	AmountSpent   NullableFloat `json:"amount_spent"`
	Currency      NullableString `json:"currency"`
	Location      *Location     `json:"location,omitempty"`
	Proof         *ProofBundle  `json:"proof,omitempty"`
}

// ImpactFilter narrows club-level impact listings.
type ImpactFilter struct {
	Status     *ImpactStatus
	EventID    *uuid.UUID
	CampaignID *uuid.UUID
}

// ImpactSummary is the roll-up returned for an event's or campaign's impact
// reporting.
type ImpactSummary struct {
	TotalUpdates      int        `json:"total_updates"`
	PublishedUpdates  int        `json:"published_updates"`
	DraftUpdates      int        `json:"draft_updates"`
	ProofCompleteness int        `json:"proof_completeness"`
	TotalAmountSpent  float64    `json:"total_amount_spent"`
	TotalMediaItems   int        `json:"total_media_items"`
	HasFinalReport    bool       `json:"has_final_report"`
	LastImpactAt      *time.Time `json:"last_impact_at,omitempty"`
}

// PublishValidation is the publish-precondition result surfaced to clients.
// Reason names the specific unmet requirement.
type PublishValidation struct {
	CanPublish bool   `json:"can_publish"`
	Reason     string `json:"reason,omitempty"`
}

// FinalizeDecision is the finalization-gate result.
type FinalizeDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ScoreBreakdown itemizes the reputation score components. Each component is
// capped: media 60, metrics 80, financial 80, testimonials 50.
type ScoreBreakdown struct {
	MediaPoints       int `json:"media_points"`
	MetricsPoints     int `json:"metrics_points"`
	FinancialPoints   int `json:"financial_points"`
	TestimonialPoints int `json:"testimonial_points"`
}

type ReputationScore struct {
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Rating    string         `json:"rating"`
}

// TrustStatus is the club-level gate blocking new campaigns and events while
// impact reporting is outstanding.
type TrustStatus struct {
	CanCreateCampaign        bool                `json:"can_create_campaign"`
	CanCreateEvent           bool                `json:"can_create_event"`
	OutstandingImpactReports int                 `json:"outstanding_impact_reports"`
	OverdueDays              int                 `json:"overdue_days"`
	Reason                   string              `json:"reason,omitempty"`
	Outstanding              []OutstandingReport `json:"outstanding,omitempty"`
}

type OutstandingReport struct {
	EventID     uuid.UUID `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	EndedAt     time.Time `json:"ended_at"`
	DaysOverdue int       `json:"days_overdue"`
}

var (
	ErrImpactNotFound   = errors.New("impact update not found")
	ErrImpactNotDraft   = errors.New("only draft impact updates can be modified")
	ErrImpactFinalized  = errors.New("impact reporting for this event has been finalized")
	ErrImpactNotAllowed = errors.New("not allowed to manage impact updates for this club")
)

// FinalizeError wraps the finalization gate's refusal reason so handlers can
// surface it as a client error.
type FinalizeError struct {
	Reason string
}

func (e *FinalizeError) Error() string {
	return e.Reason
}

func NewFinalizeError(reason string) error {
	return &FinalizeError{Reason: reason}
}

// ValidationError marks an input or publish-requirement failure whose reason is
// safe to return to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
