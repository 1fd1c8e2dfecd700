package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
	"clubraise/internal/service/impact"
	"clubraise/internal/service/trust"
)

// Stats is the per-club roll-up shown on the club dashboard.
type Stats struct {
	TotalCampaigns   int64                  `json:"total_campaigns"`
	ActiveCampaigns  int64                  `json:"active_campaigns"`
	TotalEvents      int64                  `json:"total_events"`
	TotalSupporters  int64                  `json:"total_supporters"`
	TotalRaised      float64                `json:"total_raised"`
	PublishedUpdates   int64                  `json:"published_updates"`
	ReputationScore    domain.ReputationScore `json:"reputation_score"`
	OutstandingReports int                    `json:"outstanding_reports"`
	ReportingBlocked   bool                   `json:"reporting_blocked"`
}

type Service interface {
	GetStats(ctx context.Context, clubID uuid.UUID) (*Stats, error)
}

type service struct {
	campaignRepo  repository.CampaignRepository
	eventRepo     repository.EventRepository
	supporterRepo repository.SupporterRepository
	impactRepo    repository.ImpactRepository
	impactSvc     impact.Service
	trustSvc      trust.Service
	redis         *redis.Client
}

func NewService(
	campaignRepo repository.CampaignRepository,
	eventRepo repository.EventRepository,
	supporterRepo repository.SupporterRepository,
	impactRepo repository.ImpactRepository,
	impactSvc impact.Service,
	trustSvc trust.Service,
	redisClient *redis.Client,
) Service {
	return &service{
		campaignRepo:  campaignRepo,
		eventRepo:     eventRepo,
		supporterRepo: supporterRepo,
		impactRepo:    impactRepo,
		impactSvc:     impactSvc,
		trustSvc:      trustSvc,
		redis:         redisClient,
	}
}

func (s *service) GetStats(ctx context.Context, clubID uuid.UUID) (*Stats, error) {
	cacheKey := "dashboard:stats:" + clubID.String()

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	totalCampaigns, activeCampaigns, err := s.campaignRepo.CountByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	totalEvents, err := s.eventRepo.CountByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	totalSupporters, err := s.supporterRepo.CountByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	totalRaised, err := s.campaignRepo.SumRaisedByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	publishedUpdates, err := s.impactRepo.CountPublishedForClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	score, err := s.impactSvc.ClubScore(ctx, clubID)
	if err != nil {
		return nil, err
	}

	trustStatus, err := s.trustSvc.Status(ctx, clubID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalCampaigns:     totalCampaigns,
		ActiveCampaigns:    activeCampaigns,
		TotalEvents:        totalEvents,
		TotalSupporters:    totalSupporters,
		TotalRaised:        totalRaised,
		PublishedUpdates:   publishedUpdates,
		ReputationScore:    *score,
		OutstandingReports: trustStatus.OutstandingImpactReports,
		ReportingBlocked:   !trustStatus.CanCreateCampaign,
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}
