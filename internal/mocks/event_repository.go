package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"clubraise/internal/domain"
)

type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepository) ListByClub(ctx context.Context, clubID uuid.UUID, params domain.PaginationParams) ([]domain.Event, int64, error) {
	args := m.Called(ctx, clubID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Event), args.Get(1).(int64), args.Error(2)
}

func (m *EventRepository) ListEndedByClub(ctx context.Context, clubID uuid.UUID, endedBefore time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, clubID, endedBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *EventRepository) CountByClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).(int64), args.Error(1)
}
