package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// MockEventLogService is a mock implementation of EventLogService
type MockEventLogService struct {
	mock.Mock
}

// NewMockEventLogService creates a new MockEventLogService
func NewMockEventLogService() *MockEventLogService {
	return &MockEventLogService{}
}

func (m *MockEventLogService) Query(ctx context.Context, from, to *time.Time, limit int) ([]domain.Event, error) {
	args := m.Called(ctx, from, to, limit)
	return args.Get(0).([]domain.Event), args.Error(1)
}
