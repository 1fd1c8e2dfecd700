package trust

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
)

// Service computes the club-level trust gate: clubs with overdue impact
// reporting cannot create new campaigns or events until they report.
type Service interface {
	Status(ctx context.Context, clubID uuid.UUID) (*domain.TrustStatus, error)
	Invalidate(ctx context.Context, clubID uuid.UUID)
}

type service struct {
	eventRepo  repository.EventRepository
	impactRepo repository.ImpactRepository
	redis      *redis.Client
	grace      time.Duration
}

const cacheTTL = 5 * time.Minute

// NewService builds a trust gate with the given reporting grace period: an
// event owes a published impact update within that window after it ends.
func NewService(eventRepo repository.EventRepository, impactRepo repository.ImpactRepository, redisClient *redis.Client, graceDays int) Service {
	return &service{
		eventRepo:  eventRepo,
		impactRepo: impactRepo,
		redis:      redisClient,
		grace:      time.Duration(graceDays) * 24 * time.Hour,
	}
}

func cacheKey(clubID uuid.UUID) string {
	return "trust:status:" + clubID.String()
}

func (s *service) Status(ctx context.Context, clubID uuid.UUID) (*domain.TrustStatus, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey(clubID)).Result(); err == nil {
			var status domain.TrustStatus
			if json.Unmarshal([]byte(cached), &status) == nil {
				return &status, nil
			}
		}
	}

	status, err := s.compute(ctx, clubID, time.Now())
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(status); err == nil {
			_ = s.redis.Set(ctx, cacheKey(clubID), payload, cacheTTL).Err()
		}
	}

	return status, nil
}

func (s *service) compute(ctx context.Context, clubID uuid.UUID, now time.Time) (*domain.TrustStatus, error) {
	ended, err := s.eventRepo.ListEndedByClub(ctx, clubID, now)
	if err != nil {
		return nil, err
	}

	status := &domain.TrustStatus{
		CanCreateCampaign: true,
		CanCreateEvent:    true,
	}

	for i := range ended {
		event := &ended[i]
		published, err := s.impactRepo.CountPublishedForEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		if published > 0 {
			continue
		}

		daysOverdue := int(now.Sub(event.EndsAt.Add(s.grace)).Hours() / 24)
		if daysOverdue < 0 {
			daysOverdue = 0
		}

		status.OutstandingImpactReports++
		status.Outstanding = append(status.Outstanding, domain.OutstandingReport{
			EventID:     event.ID,
			EventTitle:  event.Title,
			EndedAt:     event.EndsAt,
			DaysOverdue: daysOverdue,
		})
		if daysOverdue > status.OverdueDays {
			status.OverdueDays = daysOverdue
		}
	}

	if status.OverdueDays > 0 {
		status.CanCreateCampaign = false
		status.CanCreateEvent = false
		status.Reason = fmt.Sprintf(
			"%d past event(s) have no published impact update, the oldest %d day(s) overdue. Publish an impact update to unlock new campaigns and events.",
			status.OutstandingImpactReports, status.OverdueDays,
		)
	}

	return status, nil
}

// Invalidate drops the cached status. Called after an impact update is
// published so the gate reopens without waiting out the TTL.
func (s *service) Invalidate(ctx context.Context, clubID uuid.UUID) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKey(clubID)).Err()
	}
}
