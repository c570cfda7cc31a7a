package geofence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// MockGeofenceService is a mock implementation of GeofenceService
type MockGeofenceService struct {
	mock.Mock
}

// NewMockGeofenceService creates a new MockGeofenceService
func NewMockGeofenceService() *MockGeofenceService {
	return &MockGeofenceService{}
}

func (m *MockGeofenceService) Verify(ctx context.Context, hash domain.FileHash, latMicro, lonMicro int32) (bool, error) {
	args := m.Called(ctx, hash, latMicro, lonMicro)
	return args.Bool(0), args.Error(1)
}
