package impact_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"clubraise/internal/domain"
	"clubraise/internal/service/impact"
)

func publishableDraft() *domain.ImpactUpdate {
	eventID := uuid.New()
	return &domain.ImpactUpdate{
		ID:            uuid.New(),
		ClubID:        uuid.New(),
		EventID:       &eventID,
		ImpactAreaIDs: domain.ImpactAreaIDs{"sport-participation"},
		Title:         "Winter training camp wrap-up",
		Description:   "Three weekends of coaching for the junior squad.",
		ImpactDate:    time.Now(),
		Metrics:       domain.Metrics{{Name: "attendees", Value: 42, Unit: "people"}},
		Proof: domain.ProofBundle{
			Media: []domain.MediaItem{{Type: domain.MediaImage, URL: "https://cdn.example.com/camp.jpg"}},
		},
		Status: domain.ImpactDraft,
	}
}

func TestNextStatus(t *testing.T) {
	t.Run("Draft Publishes", func(t *testing.T) {
		next, err := impact.NextStatus(publishableDraft(), impact.EventPublish)

		assert.NoError(t, err)
		assert.Equal(t, domain.ImpactPublished, next)
	})

	t.Run("Published Verifies", func(t *testing.T) {
		u := publishableDraft()
		u.Status = domain.ImpactPublished

		next, err := impact.NextStatus(u, impact.EventVerify)

		assert.NoError(t, err)
		assert.Equal(t, domain.ImpactVerified, next)
	})

	t.Run("Published Flags", func(t *testing.T) {
		u := publishableDraft()
		u.Status = domain.ImpactPublished

		next, err := impact.NextStatus(u, impact.EventFlag)

		assert.NoError(t, err)
		assert.Equal(t, domain.ImpactFlagged, next)
	})

	t.Run("Verified Flags", func(t *testing.T) {
		u := publishableDraft()
		u.Status = domain.ImpactVerified

		next, err := impact.NextStatus(u, impact.EventFlag)

		assert.NoError(t, err)
		assert.Equal(t, domain.ImpactFlagged, next)
	})

	t.Run("Rejected Combinations", func(t *testing.T) {
		cases := []struct {
			from  domain.ImpactStatus
			event impact.LifecycleEvent
		}{
			{domain.ImpactDraft, impact.EventVerify},
			{domain.ImpactDraft, impact.EventFlag},
			{domain.ImpactPublished, impact.EventPublish},
			{domain.ImpactVerified, impact.EventPublish},
			{domain.ImpactVerified, impact.EventVerify},
			{domain.ImpactFlagged, impact.EventPublish},
			{domain.ImpactFlagged, impact.EventVerify},
			{domain.ImpactFlagged, impact.EventFlag},
		}

		for _, tc := range cases {
			u := publishableDraft()
			u.Status = tc.from

			_, err := impact.NextStatus(u, tc.event)
			assert.ErrorIs(t, err, impact.ErrNoTransition, "%s %s", tc.event, tc.from)
		}
	})

	t.Run("Publish Guard Blocks Incomplete Draft", func(t *testing.T) {
		u := publishableDraft()
		u.Proof.Media = nil

		_, err := impact.NextStatus(u, impact.EventPublish)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, impact.ErrNoTransition)
	})
}

func TestValidatePublish(t *testing.T) {
	t.Run("Complete Draft Passes", func(t *testing.T) {
		v := impact.ValidatePublish(publishableDraft())

		assert.True(t, v.CanPublish)
		assert.Empty(t, v.Reason)
	})

	t.Run("Missing Title", func(t *testing.T) {
		u := publishableDraft()
		u.Title = "   "

		v := impact.ValidatePublish(u)

		assert.False(t, v.CanPublish)
		assert.Equal(t, "a title is required before publishing", v.Reason)
	})

	t.Run("Missing Description", func(t *testing.T) {
		u := publishableDraft()
		u.Description = ""

		v := impact.ValidatePublish(u)

		assert.False(t, v.CanPublish)
		assert.Equal(t, "a description is required before publishing", v.Reason)
	})

	t.Run("No Impact Areas", func(t *testing.T) {
		u := publishableDraft()
		u.ImpactAreaIDs = nil

		v := impact.ValidatePublish(u)

		assert.False(t, v.CanPublish)
		assert.Equal(t, "at least one impact area must be selected", v.Reason)
	})

	t.Run("No Metric With Value", func(t *testing.T) {
		u := publishableDraft()
		u.Metrics = domain.Metrics{{Name: "attendees", Value: 0}}

		v := impact.ValidatePublish(u)

		assert.False(t, v.CanPublish)
		assert.Equal(t, "at least one metric with a value greater than zero is required", v.Reason)
	})

	t.Run("No Media", func(t *testing.T) {
		u := publishableDraft()
		u.Proof.Media = nil

		v := impact.ValidatePublish(u)

		assert.False(t, v.CanPublish)
		assert.Equal(t, "at least one photo or video of the impact is required", v.Reason)
	})

	t.Run("Spend Without Financial Proof", func(t *testing.T) {
		u := publishableDraft()
		amount := 100.0
		u.AmountSpent = &amount

		v := impact.ValidatePublish(u)

		assert.False(t, v.CanPublish)
		assert.Equal(t, "a receipt or invoice is required when money was spent", v.Reason)

		u.Proof.Receipts = []string{"https://cdn.example.com/receipt.pdf"}
		v = impact.ValidatePublish(u)

		assert.True(t, v.CanPublish)
	})
}

func TestCanFinalize(t *testing.T) {
	published := func() *domain.ImpactUpdate {
		u := publishableDraft()
		u.Status = domain.ImpactPublished
		return u
	}

	t.Run("Published Event Update Allowed", func(t *testing.T) {
		d := impact.CanFinalize(published(), false)

		assert.True(t, d.Allowed)
		assert.Empty(t, d.Reason)
	})

	t.Run("Already Final", func(t *testing.T) {
		u := published()
		u.IsFinal = true

		d := impact.CanFinalize(u, false)

		assert.False(t, d.Allowed)
		assert.Equal(t, "this impact update is already final", d.Reason)
	})

	t.Run("Not Published", func(t *testing.T) {
		d := impact.CanFinalize(publishableDraft(), false)

		assert.False(t, d.Allowed)
		assert.Equal(t, "only published impact updates can be marked final (current status: draft)", d.Reason)
	})

	t.Run("No Event", func(t *testing.T) {
		u := published()
		u.EventID = nil

		d := impact.CanFinalize(u, false)

		assert.False(t, d.Allowed)
		assert.Equal(t, "only impact updates attached to an event can be marked final", d.Reason)
	})

	t.Run("Sibling Already Final", func(t *testing.T) {
		d := impact.CanFinalize(published(), true)

		assert.False(t, d.Allowed)
		assert.Equal(t, "another impact update for this event is already final", d.Reason)
	})
}

func TestValidateCreation(t *testing.T) {
	validInput := func() domain.CreateImpactInput {
		eventID := uuid.New()
		return domain.CreateImpactInput{
			ClubID:        uuid.New(),
			EventID:       &eventID,
			ImpactAreaIDs: domain.ImpactAreaIDs{"community-inclusion", "health-wellbeing"},
			Title:         "Open day for new families",
			Description:   "Free taster sessions and equipment loans.",
			ImpactDate:    time.Now(),
			Metrics:       domain.Metrics{{Name: "families", Value: 18}},
			Proof: domain.ProofBundle{
				Media: []domain.MediaItem{{Type: domain.MediaVideo, URL: "https://cdn.example.com/openday.mp4"}},
			},
		}
	}

	t.Run("Valid Input", func(t *testing.T) {
		assert.NoError(t, impact.ValidateCreation(validInput()))
	})

	t.Run("No Parent Entity", func(t *testing.T) {
		input := validInput()
		input.EventID = nil
		input.CampaignID = nil

		assert.EqualError(t, impact.ValidateCreation(input), "an impact update must reference an event or a campaign")
	})

	t.Run("Too Many Areas", func(t *testing.T) {
		input := validInput()
		input.ImpactAreaIDs = domain.ImpactAreaIDs{"community-inclusion", "health-wellbeing", "sport-participation", "education-learning"}

		assert.EqualError(t, impact.ValidateCreation(input), "at most 3 impact areas may be selected")
	})

	t.Run("Duplicate Area", func(t *testing.T) {
		input := validInput()
		input.ImpactAreaIDs = domain.ImpactAreaIDs{"community-inclusion", "community-inclusion"}

		assert.EqualError(t, impact.ValidateCreation(input), `impact area "community-inclusion" selected twice`)
	})

	t.Run("Unknown Area", func(t *testing.T) {
		input := validInput()
		input.ImpactAreaIDs = domain.ImpactAreaIDs{"time-travel"}

		assert.EqualError(t, impact.ValidateCreation(input), `unknown impact area "time-travel"`)
	})

	t.Run("Negative Metric", func(t *testing.T) {
		input := validInput()
		input.Metrics = domain.Metrics{{Name: "families", Value: -3}}

		assert.EqualError(t, impact.ValidateCreation(input), `metric "families" has a negative value`)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		input := validInput()
		amount := -50.0
		input.AmountSpent = &amount

		assert.EqualError(t, impact.ValidateCreation(input), "amount spent cannot be negative")
	})

	t.Run("Amount Without Currency", func(t *testing.T) {
		input := validInput()
		amount := 250.0
		input.AmountSpent = &amount

		assert.EqualError(t, impact.ValidateCreation(input), "currency is required when an amount spent is recorded")
	})
}
