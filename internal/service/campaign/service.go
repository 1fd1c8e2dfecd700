package campaign

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
	"clubraise/internal/service/trust"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNotAllowed       = errors.New("not allowed to manage campaigns for this club")
)

// ErrBlockedByTrustGate is returned when the club has overdue impact
// reporting; the reason comes from the trust status.
type ErrBlockedByTrustGate struct {
	Reason string
}

func (e *ErrBlockedByTrustGate) Error() string {
	return e.Reason
}

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreateCampaignInput) (*domain.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateCampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Campaign], error)
}

type service struct {
	campaignRepo repository.CampaignRepository
	trustSvc     trust.Service
}

func NewService(campaignRepo repository.CampaignRepository, trustSvc trust.Service) Service {
	return &service{campaignRepo: campaignRepo, trustSvc: trustSvc}
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreateCampaignInput) (*domain.Campaign, error) {
	if !user.CanManageImpact(input.ClubID) {
		return nil, ErrNotAllowed
	}

	status, err := s.trustSvc.Status(ctx, input.ClubID)
	if err != nil {
		return nil, err
	}
	if !status.CanCreateCampaign {
		return nil, &ErrBlockedByTrustGate{Reason: status.Reason}
	}

	campaign := &domain.Campaign{
		ID:          uuid.New(),
		ClubID:      input.ClubID,
		Title:       input.Title,
		Description: input.Description,
		GoalAmount:  input.GoalAmount,
		Currency:    input.Currency,
		Status:      domain.CampaignActive,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		CreatedBy:   user.ID,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *service) Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateCampaignInput) (*domain.Campaign, error) {
	campaign, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(campaign.ClubID) {
		return nil, ErrNotAllowed
	}

	if input.Title != nil {
		campaign.Title = *input.Title
	}
	if input.Description.Set {
		campaign.Description = input.Description.Value
	}
	if input.GoalAmount != nil {
		campaign.GoalAmount = *input.GoalAmount
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, errors.New("unknown campaign status")
		}
		campaign.Status = *input.Status
	}
	if input.StartsAt.Set {
		campaign.StartsAt = input.StartsAt.Value
	}
	if input.EndsAt.Set {
		campaign.EndsAt = input.EndsAt.Value
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	campaign, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CanManageImpact(campaign.ClubID) {
		return ErrNotAllowed
	}
	return s.campaignRepo.Delete(ctx, id)
}

func (s *service) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Campaign], error) {
	campaigns, total, err := s.campaignRepo.ListByClub(ctx, clubID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Campaign]{}, err
	}
	return domain.NewPaginatedResponse(campaigns, params.Page, params.PageSize, total), nil
}
