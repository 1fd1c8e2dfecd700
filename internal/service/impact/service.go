package impact

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
	"clubraise/internal/service/notification"
	"clubraise/internal/service/trust"
)

// RequestMeta carries request attribution into the audit log.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreateImpactInput) (*domain.ImpactUpdate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ImpactUpdate, error)
	Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateImpactInput) (*domain.ImpactUpdate, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) error
	ListByEvent(ctx context.Context, eventID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error)
	ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.ImpactFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.ImpactUpdate], error)
	EventSummary(ctx context.Context, eventID uuid.UUID) (*domain.ImpactSummary, error)
	CampaignSummary(ctx context.Context, campaignID uuid.UUID) (*domain.ImpactSummary, error)
	Validation(ctx context.Context, id uuid.UUID) (*domain.PublishValidation, error)
	Publish(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) (*domain.ImpactUpdate, error)
	Verify(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) error
	Flag(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) error
	CanMarkFinal(ctx context.Context, id uuid.UUID) (*domain.FinalizeDecision, error)
	MarkFinal(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) (*domain.ImpactUpdate, error)
	ClubScore(ctx context.Context, clubID uuid.UUID) (*domain.ReputationScore, error)
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	impactRepo repository.ImpactRepository
	clubRepo   repository.ClubRepository
	auditRepo  repository.AuditLogRepository
	trustSvc   trust.Service
	notifSvc   notification.Service
	redis      *redis.Client
}

const scoreCacheTTL = 5 * time.Minute

func NewService(
	impactRepo repository.ImpactRepository,
	clubRepo repository.ClubRepository,
	auditRepo repository.AuditLogRepository,
	trustSvc trust.Service,
	redisClient *redis.Client,
) Service {
	return &service{
		impactRepo: impactRepo,
		clubRepo:   clubRepo,
		auditRepo:  auditRepo,
		trustSvc:   trustSvc,
		redis:      redisClient,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreateImpactInput) (*domain.ImpactUpdate, error) {
	if !user.CanManageImpact(input.ClubID) {
		return nil, domain.ErrImpactNotAllowed
	}
	if err := ValidateCreation(input); err != nil {
		return nil, err
	}

	// A finalized event accepts no further impact updates.
	if input.EventID != nil {
		finalExists, err := s.impactRepo.HasFinalForEvent(ctx, *input.EventID)
		if err != nil {
			return nil, err
		}
		if finalExists {
			return nil, domain.ErrImpactFinalized
		}
	}

	update := &domain.ImpactUpdate{
		ID:            uuid.New(),
		ClubID:        input.ClubID,
		EventID:       input.EventID,
		CampaignID:    input.CampaignID,
		ImpactAreaIDs: input.ImpactAreaIDs,
		Title:         input.Title,
		Description:   input.Description,
		ImpactDate:    input.ImpactDate,
		Metrics:       input.Metrics,
		AmountSpent:   input.AmountSpent,
		Currency:      input.Currency,
		Location:      input.Location,
		Proof:         input.Proof,
		Status:        domain.ImpactDraft,
		CreatedBy:     user.ID,
	}

	if err := s.impactRepo.Create(ctx, update); err != nil {
		return nil, err
	}

	return update, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImpactUpdate, error) {
	update, err := s.impactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update == nil {
		return nil, domain.ErrImpactNotFound
	}
	return update, nil
}

func (s *service) Update(ctx context.Context, user *domain.User, id uuid.UUID, input domain.UpdateImpactInput) (*domain.ImpactUpdate, error) {
	update, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(update.ClubID) {
		return nil, domain.ErrImpactNotAllowed
	}
	if !update.Editable() {
		return nil, domain.ErrImpactNotDraft
	}

	if input.ImpactAreaIDs != nil {
		if err := validateAreas(input.ImpactAreaIDs); err != nil {
			return nil, err
		}
		update.ImpactAreaIDs = input.ImpactAreaIDs
	}
	if input.Title != nil {
		update.Title = *input.Title
	}
	if input.Description != nil {
		update.Description = *input.Description
	}
	if input.ImpactDate != nil {
		update.ImpactDate = *input.ImpactDate
	}
	if input.Metrics != nil {
		update.Metrics = input.Metrics
	}
	if input.AmountSpent.Set {
		update.AmountSpent = input.AmountSpent.Value
	}
	if input.Currency.Set {
		update.Currency = input.Currency.Value
	}
	if input.Location != nil {
		update.Location = input.Location
	}
	if input.Proof != nil {
		update.Proof = *input.Proof
	}

	if err := s.impactRepo.Update(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) error {
	update, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CanManageImpact(update.ClubID) {
		return domain.ErrImpactNotAllowed
	}
	if !update.Editable() {
		return domain.ErrImpactNotDraft
	}

	if err := s.impactRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logAudit(ctx, user.ID, domain.AuditDeleteImpact, update, update.Status, update.Status, meta)
	return nil
}

func (s *service) ListByEvent(ctx context.Context, eventID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error) {
	return s.impactRepo.ListByEvent(ctx, eventID, status)
}

func (s *service) ListByCampaign(ctx context.Context, campaignID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error) {
	return s.impactRepo.ListByCampaign(ctx, campaignID, status)
}

func (s *service) ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.ImpactFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.ImpactUpdate], error) {
	updates, total, err := s.impactRepo.ListByClub(ctx, clubID, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.ImpactUpdate]{}, err
	}
	return domain.NewPaginatedResponse(updates, params.Page, params.PageSize, total), nil
}

func (s *service) EventSummary(ctx context.Context, eventID uuid.UUID) (*domain.ImpactSummary, error) {
	updates, err := s.impactRepo.ListByEvent(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}
	return summarize(updates), nil
}

func (s *service) CampaignSummary(ctx context.Context, campaignID uuid.UUID) (*domain.ImpactSummary, error) {
	updates, err := s.impactRepo.ListByCampaign(ctx, campaignID, nil)
	if err != nil {
		return nil, err
	}
	return summarize(updates), nil
}

func summarize(updates []domain.ImpactUpdate) *domain.ImpactSummary {
	summary := &domain.ImpactSummary{
		TotalUpdates:      len(updates),
		ProofCompleteness: ProofCompleteness(updates),
	}

	for i := range updates {
		u := &updates[i]
		switch u.Status {
		case domain.ImpactDraft:
			summary.DraftUpdates++
		case domain.ImpactPublished, domain.ImpactVerified:
			summary.PublishedUpdates++
		case domain.ImpactFlagged:
			// flagged records stay in the totals but count as neither
		}
		summary.TotalAmountSpent += u.SpentAmount()
		summary.TotalMediaItems += len(u.Proof.Media)
		if u.IsFinal {
			summary.HasFinalReport = true
		}
		if summary.LastImpactAt == nil || u.ImpactDate.After(*summary.LastImpactAt) {
			t := u.ImpactDate
			summary.LastImpactAt = &t
		}
	}

	return summary
}

func (s *service) Validation(ctx context.Context, id uuid.UUID) (*domain.PublishValidation, error) {
	update, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	validation := ValidatePublish(update)
	return &validation, nil
}

func (s *service) Publish(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) (*domain.ImpactUpdate, error) {
	update, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(update.ClubID) {
		return nil, domain.ErrImpactNotAllowed
	}

	next, err := NextStatus(update, EventPublish)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.impactRepo.SetStatus(ctx, id, next, &now); err != nil {
		return nil, err
	}

	previous := update.Status
	update.Status = next
	update.PublishedAt = &now

	s.logAudit(ctx, user.ID, domain.AuditPublishImpact, update, previous, next, meta)
	s.invalidateClubCaches(ctx, update.ClubID)

	if s.notifSvc != nil {
		clubName := ""
		if club, err := s.clubRepo.GetByID(ctx, update.ClubID); err == nil && club != nil {
			clubName = club.Name
		}
		go func(u domain.ImpactUpdate) {
			_ = s.notifSvc.NotifyImpactPublished(context.Background(), &u, clubName)
		}(*update)
	}

	return update, nil
}

func (s *service) Verify(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) error {
	return s.moderate(ctx, user, id, EventVerify, domain.AuditVerifyImpact, domain.NotifImpactVerified, meta)
}

func (s *service) Flag(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) error {
	return s.moderate(ctx, user, id, EventFlag, domain.AuditFlagImpact, domain.NotifImpactFlagged, meta)
}

func (s *service) moderate(ctx context.Context, user *domain.User, id uuid.UUID, event LifecycleEvent, action string, notifType domain.NotificationType, meta *RequestMeta) error {
	update, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	next, err := NextStatus(update, event)
	if err != nil {
		return err
	}

	if err := s.impactRepo.SetStatus(ctx, id, next, nil); err != nil {
		return err
	}

	previous := update.Status
	update.Status = next

	s.logAudit(ctx, user.ID, action, update, previous, next, meta)
	s.invalidateClubCaches(ctx, update.ClubID)

	if s.notifSvc != nil {
		go func(u domain.ImpactUpdate) {
			_ = s.notifSvc.NotifyImpactModerated(context.Background(), &u, notifType)
		}(*update)
	}

	return nil
}

func (s *service) CanMarkFinal(ctx context.Context, id uuid.UUID) (*domain.FinalizeDecision, error) {
	update, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	siblingFinal := false
	if update.EventID != nil {
		siblingFinal, err = s.siblingFinalExists(ctx, *update.EventID, update.ID)
		if err != nil {
			return nil, err
		}
	}

	decision := CanFinalize(update, siblingFinal)
	return &decision, nil
}

func (s *service) MarkFinal(ctx context.Context, user *domain.User, id uuid.UUID, meta *RequestMeta) (*domain.ImpactUpdate, error) {
	update, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManageImpact(update.ClubID) {
		return nil, domain.ErrImpactNotAllowed
	}

	siblingFinal := false
	if update.EventID != nil {
		siblingFinal, err = s.siblingFinalExists(ctx, *update.EventID, update.ID)
		if err != nil {
			return nil, err
		}
	}

	if decision := CanFinalize(update, siblingFinal); !decision.Allowed {
		return nil, domain.NewFinalizeError(decision.Reason)
	}

	now := time.Now()
	if err := s.impactRepo.SetFinal(ctx, id, now); err != nil {
		return nil, err
	}

	update.IsFinal = true
	update.FinalizedAt = &now

	s.logAudit(ctx, user.ID, domain.AuditFinalizeImpact, update, update.Status, update.Status, meta)

	if s.notifSvc != nil {
		go func(u domain.ImpactUpdate) {
			_ = s.notifSvc.NotifyImpactFinalized(context.Background(), &u)
		}(*update)
	}

	return update, nil
}

// siblingFinalExists reports whether any other record for the event already
// holds the final flag.
func (s *service) siblingFinalExists(ctx context.Context, eventID, selfID uuid.UUID) (bool, error) {
	siblings, err := s.impactRepo.ListByEvent(ctx, eventID, nil)
	if err != nil {
		return false, err
	}
	for i := range siblings {
		if siblings[i].ID != selfID && siblings[i].IsFinal {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) ClubScore(ctx context.Context, clubID uuid.UUID) (*domain.ReputationScore, error) {
	cacheKey := "impact:score:" + clubID.String()

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var score domain.ReputationScore
			if json.Unmarshal([]byte(cached), &score) == nil {
				return &score, nil
			}
		}
	}

	updates, err := s.impactRepo.ListAllByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	score := CalculateAggregateScore(updates)

	if s.redis != nil {
		if payload, err := json.Marshal(score); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, scoreCacheTTL).Err()
		}
	}

	return &score, nil
}

func (s *service) invalidateClubCaches(ctx context.Context, clubID uuid.UUID) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, "impact:score:"+clubID.String()).Err()
	}
	if s.trustSvc != nil {
		s.trustSvc.Invalidate(ctx, clubID)
	}
}

func (s *service) logAudit(ctx context.Context, userID uuid.UUID, action string, update *domain.ImpactUpdate, from, to domain.ImpactStatus, meta *RequestMeta) {
	oldValue, _ := json.Marshal(map[string]string{"status": string(from)})
	newValue, _ := json.Marshal(map[string]interface{}{"status": string(to), "is_final": update.IsFinal})

	clubID := update.ClubID
	log := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     userID,
		ClubID:     &clubID,
		Action:     action,
		EntityType: "IMPACT_UPDATE",
		EntityID:   update.ID,
		OldValue:   oldValue,
		NewValue:   newValue,
	}

	if meta != nil {
		if meta.IPAddress != "" {
			log.IPAddress = &meta.IPAddress
		}
		if meta.UserAgent != "" {
			log.UserAgent = &meta.UserAgent
		}
	}

	_ = s.auditRepo.Create(ctx, log)
}
