package audit

import (
	"context"

	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/repository"
)

type Service interface {
	ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
	RecentActivity(ctx context.Context, clubID uuid.UUID, limit int) ([]domain.AuditLog, error)
}

type service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) Service {
	return &service{auditRepo: auditRepo}
}

func (s *service) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.auditRepo.ListByClub(ctx, clubID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}
	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}

func (s *service) RecentActivity(ctx context.Context, clubID uuid.UUID, limit int) ([]domain.AuditLog, error) {
	params := domain.PaginationParams{
		Page:     1,
		PageSize: limit,
	}

	logs, _, err := s.auditRepo.ListByClub(ctx, clubID, params)
	return logs, err
}
