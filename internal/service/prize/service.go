package prize

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
	"clubraise/internal/service/notification"
)

var (
	ErrPrizeNotFound     = errors.New("prize not found")
	ErrNotAllowed        = errors.New("not allowed to manage prizes for this club")
	ErrAlreadyAwarded    = errors.New("prize has already been awarded")
	ErrSupporterNotFound = errors.New("supporter not found")
	ErrWrongClub         = errors.New("supporter belongs to a different club")
)

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreatePrizeInput) (*domain.Prize, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prize, error)
	Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdatePrizeInput) (*domain.Prize, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Prize], error)
	Award(ctx context.Context, user *domain.User, id uuid.UUID, input domain.AwardPrizeInput) (*domain.Prize, error)
}

type service struct {
	prizeRepo     repository.PrizeRepository
	supporterRepo repository.SupporterRepository
	auditRepo     repository.AuditLogRepository
	notifSvc      notification.Service
}

func NewService(prizeRepo repository.PrizeRepository, supporterRepo repository.SupporterRepository, auditRepo repository.AuditLogRepository, notifSvc notification.Service) Service {
	return &service{
		prizeRepo:     prizeRepo,
		supporterRepo: supporterRepo,
		auditRepo:     auditRepo,
		notifSvc:      notifSvc,
	}
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreatePrizeInput) (*domain.Prize, error) {
	if !user.CanManageImpact(input.ClubID) {
		return nil, ErrNotAllowed
	}

	prize := &domain.Prize{
		ID:          uuid.New(),
		ClubID:      input.ClubID,
		CampaignID:  input.CampaignID,
		SponsorID:   input.SponsorID,
		Title:       input.Title,
		Description: input.Description,
		Value:       input.Value,
		Currency:    input.Currency,
		Status:      domain.PrizeAvailable,
	}

	if err := s.prizeRepo.Create(ctx, prize); err != nil {
		return nil, err
	}
	return prize, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prize, error) {
	prize, err := s.prizeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, ErrPrizeNotFound
	}
	return prize, nil
}

func (s *service) Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdatePrizeInput) (*domain.Prize, error) {
	prize, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(prize.ClubID) {
		return nil, ErrNotAllowed
	}
	if prize.Status == domain.PrizeAwarded {
		return nil, ErrAlreadyAwarded
	}

	if input.Title != nil {
		prize.Title = *input.Title
	}
	if input.Description.Set {
		prize.Description = input.Description.Value
	}
	if input.Value != nil {
		prize.Value = *input.Value
	}
	if input.SponsorID != nil {
		prize.SponsorID = input.SponsorID
	}

	if err := s.prizeRepo.Update(ctx, prize); err != nil {
		return nil, err
	}
	return prize, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	prize, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CanManageImpact(prize.ClubID) {
		return ErrNotAllowed
	}
	return s.prizeRepo.Delete(ctx, id)
}

func (s *service) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Prize], error) {
	prizes, total, err := s.prizeRepo.ListByClub(ctx, clubID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Prize]{}, err
	}
	return domain.NewPaginatedResponse(prizes, params.Page, params.PageSize, total), nil
}

func (s *service) Award(ctx context.Context, user *domain.User, id uuid.UUID, input domain.AwardPrizeInput) (*domain.Prize, error) {
	prize, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(prize.ClubID) {
		return nil, ErrNotAllowed
	}
	if prize.Status == domain.PrizeAwarded {
		return nil, ErrAlreadyAwarded
	}

	supporter, err := s.supporterRepo.GetByID(ctx, input.SupporterID)
	if err != nil {
		return nil, err
	}
	if supporter == nil {
		return nil, ErrSupporterNotFound
	}
	if supporter.ClubID != prize.ClubID {
		return nil, ErrWrongClub
	}

	now := time.Now()
	if err := s.prizeRepo.Award(ctx, id, input.SupporterID, now); err != nil {
		return nil, err
	}

	prize.Status = domain.PrizeAwarded
	prize.AwardedTo = &input.SupporterID
	prize.AwardedAt = &now

	s.logAward(ctx, user.ID, prize, supporter)

	if s.notifSvc != nil {
		go func(p domain.Prize) {
			_ = s.notifSvc.NotifyPrizeAwarded(context.Background(), &p)
		}(*prize)
	}

	return prize, nil
}

func (s *service) logAward(ctx context.Context, userID uuid.UUID, prize *domain.Prize, supporter *domain.Supporter) {
	newValue, _ := json.Marshal(map[string]string{
		"status":     string(domain.PrizeAwarded),
		"awarded_to": supporter.ID.String(),
	})

	clubID := prize.ClubID
	_ = s.auditRepo.Create(ctx, &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     userID,
		ClubID:     &clubID,
		Action:     domain.AuditAwardPrize,
		EntityType: "PRIZE",
		EntityID:   prize.ID,
		NewValue:   newValue,
	})
}
