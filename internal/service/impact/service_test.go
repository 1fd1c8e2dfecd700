package impact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubraise/internal/domain"
	"clubraise/internal/mocks"
	"clubraise/internal/service/impact"
)

type serviceMocks struct {
	impactRepo *mocks.ImpactRepository
	clubRepo   *mocks.ClubRepository
	auditRepo  *mocks.AuditLogRepository
}

func newService() (impact.Service, *serviceMocks) {
	m := &serviceMocks{
		impactRepo: new(mocks.ImpactRepository),
		clubRepo:   new(mocks.ClubRepository),
		auditRepo:  new(mocks.AuditLogRepository),
	}
	svc := impact.NewService(m.impactRepo, m.clubRepo, m.auditRepo, nil, nil)
	return svc, m
}

func hostFor(clubID uuid.UUID) *domain.User {
	return &domain.User{
		ID:     uuid.New(),
		Role:   "host",
		ClubID: &clubID,
	}
}

func validCreateInput(clubID uuid.UUID) domain.CreateImpactInput {
	eventID := uuid.New()
	return domain.CreateImpactInput{
		ClubID:        clubID,
		EventID:       &eventID,
		ImpactAreaIDs: domain.ImpactAreaIDs{"community-inclusion"},
		Title:         "Food bank collection round-up",
		Description:   "Two van loads delivered to the food bank.",
		ImpactDate:    time.Now(),
		Metrics:       domain.Metrics{{Name: "parcels", Value: 85}},
		Proof: domain.ProofBundle{
			Media: []domain.MediaItem{{Type: domain.MediaImage, URL: "https://cdn.example.com/vans.jpg"}},
		},
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newService()
		input := validCreateInput(clubID)
		m.impactRepo.On("HasFinalForEvent", ctx, *input.EventID).Return(false, nil)
		m.impactRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.ImpactUpdate) bool {
			return u.ClubID == clubID && u.Status == domain.ImpactDraft && !u.IsFinal
		})).Return(nil)

		update, err := svc.Create(ctx, hostFor(clubID), input)

		assert.NoError(t, err)
		assert.Equal(t, domain.ImpactDraft, update.Status)
		assert.NotEqual(t, uuid.Nil, update.ID)
		m.impactRepo.AssertExpectations(t)
	})

	t.Run("Host Of Another Club", func(t *testing.T) {
		svc, m := newService()

		_, err := svc.Create(ctx, hostFor(uuid.New()), validCreateInput(clubID))

		assert.ErrorIs(t, err, domain.ErrImpactNotAllowed)
		m.impactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Admin Manages Any Club", func(t *testing.T) {
		svc, m := newService()
		input := validCreateInput(clubID)
		m.impactRepo.On("HasFinalForEvent", ctx, *input.EventID).Return(false, nil)
		m.impactRepo.On("Create", ctx, mock.Anything).Return(nil)

		admin := &domain.User{ID: uuid.New(), Role: "admin"}
		_, err := svc.Create(ctx, admin, input)

		assert.NoError(t, err)
	})

	t.Run("Event Already Finalized", func(t *testing.T) {
		svc, m := newService()
		input := validCreateInput(clubID)
		m.impactRepo.On("HasFinalForEvent", ctx, *input.EventID).Return(true, nil)

		_, err := svc.Create(ctx, hostFor(clubID), input)

		assert.ErrorIs(t, err, domain.ErrImpactFinalized)
		m.impactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Input", func(t *testing.T) {
		svc, m := newService()
		input := validCreateInput(clubID)
		input.Title = ""

		_, err := svc.Create(ctx, hostFor(clubID), input)

		assert.Error(t, err)
		m.impactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	t.Run("Published Record Is Locked", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		existing.Status = domain.ImpactPublished
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		title := "Rewritten title"
		_, err := svc.Update(ctx, hostFor(clubID), existing.ID, domain.UpdateImpactInput{Title: &title})

		assert.ErrorIs(t, err, domain.ErrImpactNotDraft)
		m.impactRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Final Draft Is Locked", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		existing.IsFinal = true
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		title := "Rewritten title"
		_, err := svc.Update(ctx, hostFor(clubID), existing.ID, domain.UpdateImpactInput{Title: &title})

		assert.ErrorIs(t, err, domain.ErrImpactNotDraft)
	})

	t.Run("Draft Updates Fields", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		m.impactRepo.On("Update", ctx, mock.Anything).Return(nil)

		title := "Corrected title"
		updated, err := svc.Update(ctx, hostFor(clubID), existing.ID, domain.UpdateImpactInput{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "Corrected title", updated.Title)
		m.impactRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, m := newService()
		id := uuid.New()
		m.impactRepo.On("GetByID", ctx, id).Return(nil, nil)

		_, err := svc.Update(ctx, hostFor(clubID), id, domain.UpdateImpactInput{})

		assert.ErrorIs(t, err, domain.ErrImpactNotFound)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	t.Run("Published Record Cannot Be Deleted", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		existing.Status = domain.ImpactPublished
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		err := svc.Delete(ctx, hostFor(clubID), existing.ID, nil)

		assert.ErrorIs(t, err, domain.ErrImpactNotDraft)
		m.impactRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Draft Deletes And Audits", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		m.impactRepo.On("Delete", ctx, existing.ID).Return(nil)
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil)

		err := svc.Delete(ctx, hostFor(clubID), existing.ID, nil)

		assert.NoError(t, err)
		m.impactRepo.AssertExpectations(t)
		m.auditRepo.AssertExpectations(t)
	})
}

func TestServicePublish(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		m.impactRepo.On("SetStatus", ctx, existing.ID, domain.ImpactPublished, mock.Anything).Return(nil)
		m.auditRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.AuditLog) bool {
			return l.Action == domain.AuditPublishImpact
		})).Return(nil)

		update, err := svc.Publish(ctx, hostFor(clubID), existing.ID, &impact.RequestMeta{IPAddress: "10.0.0.1"})

		assert.NoError(t, err)
		assert.Equal(t, domain.ImpactPublished, update.Status)
		assert.NotNil(t, update.PublishedAt)
		m.impactRepo.AssertExpectations(t)
		m.auditRepo.AssertExpectations(t)
	})

	t.Run("Incomplete Draft Is Refused", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		existing.Proof.Media = nil
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		_, err := svc.Publish(ctx, hostFor(clubID), existing.ID, nil)

		assert.Error(t, err)
		m.impactRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already Published", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		existing.Status = domain.ImpactPublished
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		_, err := svc.Publish(ctx, hostFor(clubID), existing.ID, nil)

		assert.ErrorIs(t, err, impact.ErrNoTransition)
	})
}

func TestServiceVerify(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()
	admin := &domain.User{ID: uuid.New(), Role: "admin"}

	t.Run("Published Becomes Verified", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		existing.Status = domain.ImpactPublished
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		m.impactRepo.On("SetStatus", ctx, existing.ID, domain.ImpactVerified, (*time.Time)(nil)).Return(nil)
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil)

		err := svc.Verify(ctx, admin, existing.ID, nil)

		assert.NoError(t, err)
		m.impactRepo.AssertExpectations(t)
	})

	t.Run("Draft Cannot Be Verified", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)

		err := svc.Verify(ctx, admin, existing.ID, nil)

		assert.ErrorIs(t, err, impact.ErrNoTransition)
	})
}

func TestServiceMarkFinal(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	publishedForEvent := func() *domain.ImpactUpdate {
		u := publishableDraft()
		u.ClubID = clubID
		u.Status = domain.ImpactPublished
		return u
	}

	t.Run("Success", func(t *testing.T) {
		svc, m := newService()
		existing := publishedForEvent()
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		m.impactRepo.On("ListByEvent", ctx, *existing.EventID, (*domain.ImpactStatus)(nil)).Return([]domain.ImpactUpdate{*existing}, nil)
		m.impactRepo.On("SetFinal", ctx, existing.ID, mock.Anything).Return(nil)
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil)

		update, err := svc.MarkFinal(ctx, hostFor(clubID), existing.ID, nil)

		assert.NoError(t, err)
		assert.True(t, update.IsFinal)
		assert.NotNil(t, update.FinalizedAt)
		m.impactRepo.AssertExpectations(t)
	})

	t.Run("Sibling Already Final", func(t *testing.T) {
		svc, m := newService()
		existing := publishedForEvent()
		sibling := *publishedForEvent()
		sibling.EventID = existing.EventID
		sibling.IsFinal = true
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		m.impactRepo.On("ListByEvent", ctx, *existing.EventID, (*domain.ImpactStatus)(nil)).Return([]domain.ImpactUpdate{*existing, sibling}, nil)

		_, err := svc.MarkFinal(ctx, hostFor(clubID), existing.ID, nil)

		var finalizeErr *domain.FinalizeError
		assert.ErrorAs(t, err, &finalizeErr)
		assert.Equal(t, "another impact update for this event is already final", finalizeErr.Reason)
		m.impactRepo.AssertNotCalled(t, "SetFinal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Draft Cannot Be Final", func(t *testing.T) {
		svc, m := newService()
		existing := publishableDraft()
		existing.ClubID = clubID
		m.impactRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		m.impactRepo.On("ListByEvent", ctx, *existing.EventID, (*domain.ImpactStatus)(nil)).Return([]domain.ImpactUpdate{*existing}, nil)

		_, err := svc.MarkFinal(ctx, hostFor(clubID), existing.ID, nil)

		var finalizeErr *domain.FinalizeError
		assert.ErrorAs(t, err, &finalizeErr)
	})
}

func TestServiceSummaries(t *testing.T) {
	ctx := context.Background()

	t.Run("Event Summary", func(t *testing.T) {
		svc, m := newService()
		eventID := uuid.New()
		amount := 40.0
		updates := []domain.ImpactUpdate{
			{Status: domain.ImpactDraft, ImpactDate: time.Now().Add(-48 * time.Hour)},
			{
				Status:      domain.ImpactPublished,
				ImpactDate:  time.Now(),
				AmountSpent: &amount,
				IsFinal:     true,
				Proof:       domain.ProofBundle{Media: mediaItems(3)},
			},
			{Status: domain.ImpactFlagged, ImpactDate: time.Now().Add(-24 * time.Hour)},
		}
		m.impactRepo.On("ListByEvent", ctx, eventID, (*domain.ImpactStatus)(nil)).Return(updates, nil)

		summary, err := svc.EventSummary(ctx, eventID)

		assert.NoError(t, err)
		assert.Equal(t, 3, summary.TotalUpdates)
		assert.Equal(t, 1, summary.PublishedUpdates)
		assert.Equal(t, 1, summary.DraftUpdates)
		assert.Equal(t, 40.0, summary.TotalAmountSpent)
		assert.Equal(t, 3, summary.TotalMediaItems)
		assert.True(t, summary.HasFinalReport)
		assert.NotNil(t, summary.LastImpactAt)
	})

	t.Run("Repo Error", func(t *testing.T) {
		svc, m := newService()
		campaignID := uuid.New()
		m.impactRepo.On("ListByCampaign", ctx, campaignID, (*domain.ImpactStatus)(nil)).Return(nil, errors.New("db down"))

		_, err := svc.CampaignSummary(ctx, campaignID)

		assert.Error(t, err)
	})
}

func TestServiceClubScore(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	svc, m := newService()
	updates := []domain.ImpactUpdate{
		publishedUpdate(domain.ProofBundle{Media: mediaItems(2)}, domain.Metrics{{Name: "attendees", Value: 25}}),
	}
	m.impactRepo.On("ListAllByClub", ctx, clubID).Return(updates, nil)

	score, err := svc.ClubScore(ctx, clubID)

	assert.NoError(t, err)
	assert.Equal(t, 50, score.Score)
	assert.Equal(t, impact.RatingDeveloping, score.Rating)
}
