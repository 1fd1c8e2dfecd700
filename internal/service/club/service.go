package club

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
)

var (
	ErrClubNotFound = errors.New("club not found")
	ErrSlugTaken    = errors.New("club slug already in use")
	ErrNotAllowed   = errors.New("not allowed to manage this club")
)

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreateClubInput) (*domain.Club, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Club, error)
	Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateClubInput) (*domain.Club, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Club], error)
	ImpactAreas(ctx context.Context, id uuid.UUID) ([]domain.ImpactArea, error)
}

type service struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
}

func NewService(clubRepo repository.ClubRepository, userRepo repository.UserRepository) Service {
	return &service{clubRepo: clubRepo, userRepo: userRepo}
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreateClubInput) (*domain.Club, error) {
	if !input.OrgType.IsValid() {
		return nil, errors.New("unknown organisation type")
	}

	existing, err := s.clubRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	club := &domain.Club{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        input.Slug,
		OrgType:     input.OrgType,
		Description: input.Description,
		Website:     input.Website,
		OwnerID:     user.ID,
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	// The creator becomes host of their new club.
	if user.Role != "admin" {
		if err := s.userRepo.AssignRole(ctx, user.ID, "host", &club.ID); err != nil {
			return nil, err
		}
	}

	return club, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.Club, error) {
	club, err := s.clubRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}

func (s *service) Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateClubInput) (*domain.Club, error) {
	club, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(id) {
		return nil, ErrNotAllowed
	}

	if input.Name != nil {
		club.Name = *input.Name
	}
	if input.OrgType != nil {
		if !input.OrgType.IsValid() {
			return nil, errors.New("unknown organisation type")
		}
		club.OrgType = *input.OrgType
	}
	if input.Description.Set {
		club.Description = input.Description.Value
	}
	if input.Website.Set {
		club.Website = input.Website.Value
	}
	if input.LogoURL.Set {
		club.LogoURL = input.LogoURL.Value
	}

	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	club, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role != "admin" && club.OwnerID != user.ID {
		return ErrNotAllowed
	}
	return s.clubRepo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Club], error) {
	clubs, total, err := s.clubRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Club]{}, err
	}
	return domain.NewPaginatedResponse(clubs, params.Page, params.PageSize, total), nil
}

// ImpactAreas returns the slice of the fixed taxonomy applicable to the
// club's organisation type.
func (s *service) ImpactAreas(ctx context.Context, id uuid.UUID) ([]domain.ImpactArea, error) {
	club, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.ImpactAreasFor(club.OrgType), nil
}
