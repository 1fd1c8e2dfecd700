package trust_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubraise/internal/domain"
	"clubraise/internal/mocks"
	"clubraise/internal/service/trust"
)

func endedEvent(clubID uuid.UUID, title string, endedAgo time.Duration) domain.Event {
	return domain.Event{
		ID:     uuid.New(),
		ClubID: clubID,
		Title:  title,
		EndsAt: time.Now().Add(-endedAgo),
		Status: domain.EventCompleted,
	}
}

func TestTrustStatus(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	t.Run("No Ended Events", func(t *testing.T) {
		eventRepo := new(mocks.EventRepository)
		impactRepo := new(mocks.ImpactRepository)
		eventRepo.On("ListEndedByClub", ctx, clubID, mock.Anything).Return([]domain.Event{}, nil)

		svc := trust.NewService(eventRepo, impactRepo, nil, 30)
		status, err := svc.Status(ctx, clubID)

		assert.NoError(t, err)
		assert.True(t, status.CanCreateCampaign)
		assert.True(t, status.CanCreateEvent)
		assert.Equal(t, 0, status.OutstandingImpactReports)
		assert.Empty(t, status.Reason)
		eventRepo.AssertExpectations(t)
	})

	t.Run("Reported Event Owes Nothing", func(t *testing.T) {
		event := endedEvent(clubID, "Summer fair", 60*24*time.Hour)
		eventRepo := new(mocks.EventRepository)
		impactRepo := new(mocks.ImpactRepository)
		eventRepo.On("ListEndedByClub", ctx, clubID, mock.Anything).Return([]domain.Event{event}, nil)
		impactRepo.On("CountPublishedForEvent", ctx, event.ID).Return(int64(2), nil)

		svc := trust.NewService(eventRepo, impactRepo, nil, 30)
		status, err := svc.Status(ctx, clubID)

		assert.NoError(t, err)
		assert.True(t, status.CanCreateCampaign)
		assert.True(t, status.CanCreateEvent)
		assert.Equal(t, 0, status.OutstandingImpactReports)
		impactRepo.AssertExpectations(t)
	})

	t.Run("Unreported Within Grace", func(t *testing.T) {
		event := endedEvent(clubID, "Quiz night", 10*24*time.Hour)
		eventRepo := new(mocks.EventRepository)
		impactRepo := new(mocks.ImpactRepository)
		eventRepo.On("ListEndedByClub", ctx, clubID, mock.Anything).Return([]domain.Event{event}, nil)
		impactRepo.On("CountPublishedForEvent", ctx, event.ID).Return(int64(0), nil)

		svc := trust.NewService(eventRepo, impactRepo, nil, 30)
		status, err := svc.Status(ctx, clubID)

		assert.NoError(t, err)
		assert.True(t, status.CanCreateCampaign)
		assert.True(t, status.CanCreateEvent)
		assert.Equal(t, 1, status.OutstandingImpactReports)
		assert.Equal(t, 0, status.OverdueDays)
		assert.Len(t, status.Outstanding, 1)
		assert.Equal(t, "Quiz night", status.Outstanding[0].EventTitle)
	})

	t.Run("Unreported Past Grace Blocks Creation", func(t *testing.T) {
		event := endedEvent(clubID, "Charity run", 45*24*time.Hour)
		eventRepo := new(mocks.EventRepository)
		impactRepo := new(mocks.ImpactRepository)
		eventRepo.On("ListEndedByClub", ctx, clubID, mock.Anything).Return([]domain.Event{event}, nil)
		impactRepo.On("CountPublishedForEvent", ctx, event.ID).Return(int64(0), nil)

		svc := trust.NewService(eventRepo, impactRepo, nil, 30)
		status, err := svc.Status(ctx, clubID)

		assert.NoError(t, err)
		assert.False(t, status.CanCreateCampaign)
		assert.False(t, status.CanCreateEvent)
		assert.Equal(t, 1, status.OutstandingImpactReports)
		assert.Equal(t, 15, status.OverdueDays)
		assert.NotEmpty(t, status.Reason)
	})

	t.Run("Overdue Days Track The Oldest Debt", func(t *testing.T) {
		old := endedEvent(clubID, "Spring gala", 90*24*time.Hour)
		recent := endedEvent(clubID, "Bake sale", 40*24*time.Hour)
		reported := endedEvent(clubID, "Open day", 70*24*time.Hour)

		eventRepo := new(mocks.EventRepository)
		impactRepo := new(mocks.ImpactRepository)
		eventRepo.On("ListEndedByClub", ctx, clubID, mock.Anything).Return([]domain.Event{old, recent, reported}, nil)
		impactRepo.On("CountPublishedForEvent", ctx, old.ID).Return(int64(0), nil)
		impactRepo.On("CountPublishedForEvent", ctx, recent.ID).Return(int64(0), nil)
		impactRepo.On("CountPublishedForEvent", ctx, reported.ID).Return(int64(1), nil)

		svc := trust.NewService(eventRepo, impactRepo, nil, 30)
		status, err := svc.Status(ctx, clubID)

		assert.NoError(t, err)
		assert.Equal(t, 2, status.OutstandingImpactReports)
		assert.Equal(t, 60, status.OverdueDays)
		assert.False(t, status.CanCreateEvent)
	})

	t.Run("Event Repo Error", func(t *testing.T) {
		eventRepo := new(mocks.EventRepository)
		impactRepo := new(mocks.ImpactRepository)
		eventRepo.On("ListEndedByClub", ctx, clubID, mock.Anything).Return(nil, assert.AnError)

		svc := trust.NewService(eventRepo, impactRepo, nil, 30)
		status, err := svc.Status(ctx, clubID)

		assert.Error(t, err)
		assert.Nil(t, status)
	})
}
