package supporter

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
)

var (
	ErrSupporterNotFound = errors.New("supporter not found")
	ErrNotAllowed        = errors.New("not allowed to manage supporters for this club")
)

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreateSupporterInput) (*domain.Supporter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supporter, error)
	Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateSupporterInput) (*domain.Supporter, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.SupporterFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Supporter], error)
}

type service struct {
	supporterRepo repository.SupporterRepository
}

func NewService(supporterRepo repository.SupporterRepository) Service {
	return &service{supporterRepo: supporterRepo}
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreateSupporterInput) (*domain.Supporter, error) {
	if !user.CanManageImpact(input.ClubID) {
		return nil, ErrNotAllowed
	}
	if !input.Type.IsValid() {
		return nil, errors.New("unknown supporter type")
	}

	supporter := &domain.Supporter{
		ID:           uuid.New(),
		ClubID:       input.ClubID,
		Type:         input.Type,
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Organisation: input.Organisation,
		Notes:        input.Notes,
	}

	if err := s.supporterRepo.Create(ctx, supporter); err != nil {
		return nil, err
	}
	return supporter, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supporter, error) {
	supporter, err := s.supporterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supporter == nil {
		return nil, ErrSupporterNotFound
	}
	return supporter, nil
}

func (s *service) Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateSupporterInput) (*domain.Supporter, error) {
	supporter, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(supporter.ClubID) {
		return nil, ErrNotAllowed
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, errors.New("unknown supporter type")
		}
		supporter.Type = *input.Type
	}
	if input.FullName != nil {
		supporter.FullName = *input.FullName
	}
	if input.Email.Set {
		supporter.Email = input.Email.Value
	}
	if input.Phone.Set {
		supporter.Phone = input.Phone.Value
	}
	if input.Organisation.Set {
		supporter.Organisation = input.Organisation.Value
	}
	if input.TotalDonated != nil {
		supporter.TotalDonated = *input.TotalDonated
	}
	if input.Notes.Set {
		supporter.Notes = input.Notes.Value
	}

	if err := s.supporterRepo.Update(ctx, supporter); err != nil {
		return nil, err
	}
	return supporter, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	supporter, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CanManageImpact(supporter.ClubID) {
		return ErrNotAllowed
	}
	return s.supporterRepo.Delete(ctx, id)
}

func (s *service) ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.SupporterFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Supporter], error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return domain.PaginatedResponse[domain.Supporter]{}, errors.New("unknown supporter type")
	}
	supporters, total, err := s.supporterRepo.ListByClub(ctx, clubID, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Supporter]{}, err
	}
	return domain.NewPaginatedResponse(supporters, params.Page, params.PageSize, total), nil
}
