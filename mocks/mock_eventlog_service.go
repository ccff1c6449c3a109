package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/eventlog"
)

// MockEventlogService is a mock implementation of eventlog.Service
type MockEventlogService struct {
	mock.Mock
}

var _ eventlog.Service = (*MockEventlogService)(nil)

func (m *MockEventlogService) Subscribe(bus event.Bus) {
	m.Called(bus)
}

func (m *MockEventlogService) Recent(ctx context.Context, q eventlog.Query) []event.Event {
	args := m.Called(ctx, q)
	return args.Get(0).([]event.Event)
}

func (m *MockEventlogService) CleanupOldEvents(ctx context.Context, maxAge time.Duration) int {
	args := m.Called(ctx, maxAge)
	return args.Int(0)
}

func (m *MockEventlogService) Len() int {
	args := m.Called()
	return args.Int(0)
}
