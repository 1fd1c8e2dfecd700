package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"clubraise/internal/domain"
)

type ImpactRepository struct {
	mock.Mock
}

func (m *ImpactRepository) Create(ctx context.Context, update *domain.ImpactUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *ImpactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImpactUpdate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImpactUpdate), args.Error(1)
}

func (m *ImpactRepository) Update(ctx context.Context, update *domain.ImpactUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *ImpactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ImpactRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error) {
	args := m.Called(ctx, eventID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImpactUpdate), args.Error(1)
}

func (m *ImpactRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, status *domain.ImpactStatus) ([]domain.ImpactUpdate, error) {
	args := m.Called(ctx, campaignID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImpactUpdate), args.Error(1)
}

func (m *ImpactRepository) ListByClub(ctx context.Context, clubID uuid.UUID, filter domain.ImpactFilter, params domain.PaginationParams) ([]domain.ImpactUpdate, int64, error) {
	args := m.Called(ctx, clubID, filter, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ImpactUpdate), args.Get(1).(int64), args.Error(2)
}

func (m *ImpactRepository) ListAllByClub(ctx context.Context, clubID uuid.UUID) ([]domain.ImpactUpdate, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImpactUpdate), args.Error(1)
}

func (m *ImpactRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.ImpactStatus, publishedAt *time.Time) error {
	args := m.Called(ctx, id, status, publishedAt)
	return args.Error(0)
}

func (m *ImpactRepository) SetFinal(ctx context.Context, id uuid.UUID, finalizedAt time.Time) error {
	args := m.Called(ctx, id, finalizedAt)
	return args.Error(0)
}

func (m *ImpactRepository) HasFinalForEvent(ctx context.Context, eventID uuid.UUID) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *ImpactRepository) CountPublishedForEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ImpactRepository) CountPublishedForClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).(int64), args.Error(1)
}
