package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
	"clubraise/internal/service/email"
)

// Service fans out in-app notifications (and best-effort email) to a club's
// hosts when the impact lifecycle advances.
type Service interface {
	NotifyImpactPublished(ctx context.Context, update *domain.ImpactUpdate, clubName string) error
	NotifyImpactFinalized(ctx context.Context, update *domain.ImpactUpdate) error
	NotifyImpactModerated(ctx context.Context, update *domain.ImpactUpdate, notifType domain.NotificationType) error
	NotifyPrizeAwarded(ctx context.Context, prize *domain.Prize) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) NotifyImpactPublished(ctx context.Context, update *domain.ImpactUpdate, clubName string) error {
	hosts, err := s.userRepo.ListHostsByClub(ctx, update.ClubID)
	if err != nil {
		return err
	}

	for _, host := range hosts {
		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  host.ID,
			Type:    domain.NotifImpactPublished,
			Title:   "Impact update published",
			Message: fmt.Sprintf("%q is now visible to supporters", update.Title),
			Data:    impactData(update),
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return err
		}

		if s.emailSvc != nil {
			go func(to, name string) {
				_ = s.emailSvc.SendImpactPublishedEmail(context.Background(), to, name, clubName, update.Title)
			}(host.Email, host.FullName)
		}
	}

	return nil
}

func (s *service) NotifyImpactFinalized(ctx context.Context, update *domain.ImpactUpdate) error {
	return s.fanOutToHosts(ctx, update, domain.NotifImpactFinalized,
		"Impact reporting finalized",
		fmt.Sprintf("%q is final; reporting for its event is closed", update.Title))
}

func (s *service) NotifyImpactModerated(ctx context.Context, update *domain.ImpactUpdate, notifType domain.NotificationType) error {
	title := "Impact update verified"
	message := fmt.Sprintf("%q has been verified by a moderator", update.Title)
	if notifType == domain.NotifImpactFlagged {
		title = "Impact update flagged"
		message = fmt.Sprintf("%q has been flagged by a moderator and no longer counts toward your reputation", update.Title)
	}
	return s.fanOutToHosts(ctx, update, notifType, title, message)
}

func (s *service) NotifyPrizeAwarded(ctx context.Context, prize *domain.Prize) error {
	hosts, err := s.userRepo.ListHostsByClub(ctx, prize.ClubID)
	if err != nil {
		return err
	}

	data, _ := json.Marshal(map[string]string{"prize_id": prize.ID.String()})
	for _, host := range hosts {
		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  host.ID,
			Type:    domain.NotifPrizeAwarded,
			Title:   "Prize awarded",
			Message: fmt.Sprintf("%q has been awarded", prize.Title),
			Data:    data,
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) fanOutToHosts(ctx context.Context, update *domain.ImpactUpdate, notifType domain.NotificationType, title, message string) error {
	hosts, err := s.userRepo.ListHostsByClub(ctx, update.ClubID)
	if err != nil {
		return err
	}

	for _, host := range hosts {
		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  host.ID,
			Type:    notifType,
			Title:   title,
			Message: message,
			Data:    impactData(update),
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return err
		}
	}
	return nil
}

func impactData(update *domain.ImpactUpdate) json.RawMessage {
	data, _ := json.Marshal(map[string]string{"impact_id": update.ID.String()})
	return data
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id, userID)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}
