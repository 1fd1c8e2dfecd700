package event

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
	"clubraise/internal/service/trust"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotAllowed    = errors.New("not allowed to manage events for this club")
)

type ErrBlockedByTrustGate struct {
	Reason string
}

func (e *ErrBlockedByTrustGate) Error() string {
	return e.Reason
}

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error)
}

type service struct {
	eventRepo repository.EventRepository
	trustSvc  trust.Service
}

func NewService(eventRepo repository.EventRepository, trustSvc trust.Service) Service {
	return &service{eventRepo: eventRepo, trustSvc: trustSvc}
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreateEventInput) (*domain.Event, error) {
	if !user.CanManageImpact(input.ClubID) {
		return nil, ErrNotAllowed
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, errors.New("event must end after it starts")
	}

	status, err := s.trustSvc.Status(ctx, input.ClubID)
	if err != nil {
		return nil, err
	}
	if !status.CanCreateEvent {
		return nil, &ErrBlockedByTrustGate{Reason: status.Reason}
	}

	event := &domain.Event{
		ID:          uuid.New(),
		ClubID:      input.ClubID,
		CampaignID:  input.CampaignID,
		Title:       input.Title,
		Description: input.Description,
		Venue:       input.Venue,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Status:      domain.EventScheduled,
		CreatedBy:   user.ID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *service) Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(event.ClubID) {
		return nil, ErrNotAllowed
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description.Set {
		event.Description = input.Description.Value
	}
	if input.Venue.Set {
		event.Venue = input.Venue.Value
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		event.EndsAt = *input.EndsAt
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, errors.New("unknown event status")
		}
		event.Status = *input.Status
	}
	if !event.EndsAt.After(event.StartsAt) {
		return nil, errors.New("event must end after it starts")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	// Ending or cancelling an event changes what the trust gate owes.
	if input.Status != nil || input.EndsAt != nil {
		s.trustSvc.Invalidate(ctx, event.ClubID)
	}

	return event, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CanManageImpact(event.ClubID) {
		return ErrNotAllowed
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.trustSvc.Invalidate(ctx, event.ClubID)
	return nil
}

func (s *service) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Event], error) {
	events, total, err := s.eventRepo.ListByClub(ctx, clubID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Event]{}, err
	}
	return domain.NewPaginatedResponse(events, params.Page, params.PageSize, total), nil
}
