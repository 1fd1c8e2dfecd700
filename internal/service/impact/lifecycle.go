package impact

import (
	"errors"
	"fmt"
	"strings"

	"clubraise/internal/domain"
)

// LifecycleEvent is an action attempted against an impact update.
type LifecycleEvent string

const (
	EventPublish LifecycleEvent = "publish"
	EventVerify  LifecycleEvent = "verify"
	EventFlag    LifecycleEvent = "flag"
)

// transition is one row of the lifecycle table. The same table backs both the
// mutation endpoints and the validation endpoints, so the rules cannot drift
// between them.
type transition struct {
	from  domain.ImpactStatus
	event LifecycleEvent
	to    domain.ImpactStatus
	guard func(u *domain.ImpactUpdate) error
}

var transitions = []transition{
	{from: domain.ImpactDraft, event: EventPublish, to: domain.ImpactPublished, guard: publishGuard},
	{from: domain.ImpactPublished, event: EventVerify, to: domain.ImpactVerified},
	{from: domain.ImpactPublished, event: EventFlag, to: domain.ImpactFlagged},
	{from: domain.ImpactVerified, event: EventFlag, to: domain.ImpactFlagged},
}

var ErrNoTransition = errors.New("transition not allowed from current status")

// NextStatus resolves the lifecycle table for one event against one record.
// It returns the target status, or ErrNoTransition / the guard's error.
func NextStatus(u *domain.ImpactUpdate, event LifecycleEvent) (domain.ImpactStatus, error) {
	for _, t := range transitions {
		if t.from != u.Status || t.event != event {
			continue
		}
		if t.guard != nil {
			if err := t.guard(u); err != nil {
				return "", err
			}
		}
		return t.to, nil
	}
	return "", fmt.Errorf("%w: cannot %s a %s impact update", ErrNoTransition, event, u.Status)
}

func publishGuard(u *domain.ImpactUpdate) error {
	if v := ValidatePublish(u); !v.CanPublish {
		return domain.NewValidationError(v.Reason)
	}
	return nil
}

// ValidatePublish decides whether a draft impact update meets the minimum
// evidence requirements to be published. The reason names the first unmet
// requirement so callers can surface it directly.
func ValidatePublish(u *domain.ImpactUpdate) domain.PublishValidation {
	fail := func(reason string) domain.PublishValidation {
		return domain.PublishValidation{CanPublish: false, Reason: reason}
	}

	if strings.TrimSpace(u.Title) == "" {
		return fail("a title is required before publishing")
	}
	if strings.TrimSpace(u.Description) == "" {
		return fail("a description is required before publishing")
	}
	if len(u.ImpactAreaIDs) == 0 {
		return fail("at least one impact area must be selected")
	}
	if u.Metrics.CountWithValue() == 0 {
		return fail("at least one metric with a value greater than zero is required")
	}
	if len(u.Proof.Media) == 0 {
		return fail("at least one photo or video of the impact is required")
	}
	if u.SpentAmount() > 0 && !u.Proof.HasFinancialProof() {
		return fail("a receipt or invoice is required when money was spent")
	}

	return domain.PublishValidation{CanPublish: true}
}

// CanFinalize decides whether a published impact update may be irreversibly
// marked final. siblingFinalExists reports whether another record for the same
// event already carries the final flag; finalization closes reporting for the
// event, so at most one record may hold it.
func CanFinalize(u *domain.ImpactUpdate, siblingFinalExists bool) domain.FinalizeDecision {
	if u.IsFinal {
		return domain.FinalizeDecision{Allowed: false, Reason: "this impact update is already final"}
	}
	if u.Status != domain.ImpactPublished {
		return domain.FinalizeDecision{
			Allowed: false,
			Reason:  fmt.Sprintf("only published impact updates can be marked final (current status: %s)", u.Status),
		}
	}
	if u.EventID == nil {
		return domain.FinalizeDecision{Allowed: false, Reason: "only impact updates attached to an event can be marked final"}
	}
	if siblingFinalExists {
		return domain.FinalizeDecision{Allowed: false, Reason: "another impact update for this event is already final"}
	}
	return domain.FinalizeDecision{Allowed: true}
}

// ValidateCreation enforces the creation-time invariants: a parent entity, 1-3
// known impact areas, a non-empty title and description, at least one metric
// with a positive value and at least one media item.
func ValidateCreation(input domain.CreateImpactInput) error {
	if input.EventID == nil && input.CampaignID == nil {
		return domain.NewValidationError("an impact update must reference an event or a campaign")
	}
	if strings.TrimSpace(input.Title) == "" {
		return domain.NewValidationError("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return domain.NewValidationError("description is required")
	}
	if err := validateAreas(input.ImpactAreaIDs); err != nil {
		return err
	}
	for _, m := range input.Metrics {
		if m.Value < 0 {
			return domain.NewValidationError(fmt.Sprintf("metric %q has a negative value", m.Name))
		}
	}
	if input.Metrics.CountWithValue() == 0 {
		return domain.NewValidationError("at least one metric with a value greater than zero is required")
	}
	if len(input.Proof.Media) == 0 {
		return domain.NewValidationError("at least one photo or video is required")
	}
	if input.AmountSpent != nil && *input.AmountSpent < 0 {
		return domain.NewValidationError("amount spent cannot be negative")
	}
	if input.AmountSpent != nil && *input.AmountSpent > 0 && input.Currency == nil {
		return domain.NewValidationError("currency is required when an amount spent is recorded")
	}
	return nil
}

func validateAreas(ids domain.ImpactAreaIDs) error {
	if len(ids) == 0 {
		return domain.NewValidationError("at least one impact area must be selected")
	}
	if len(ids) > domain.MaxImpactAreas {
		return domain.NewValidationError(fmt.Sprintf("at most %d impact areas may be selected", domain.MaxImpactAreas))
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return domain.NewValidationError(fmt.Sprintf("impact area %q selected twice", id))
		}
		seen[id] = true
		if _, ok := domain.ImpactAreaByID(id); !ok {
			return domain.NewValidationError(fmt.Sprintf("unknown impact area %q", id))
		}
	}
	return nil
}
