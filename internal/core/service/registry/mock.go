package registry

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// MockRegistryService is a mock implementation of RegistryService
type MockRegistryService struct {
	mock.Mock
}

// NewMockRegistryService creates a new MockRegistryService
func NewMockRegistryService() *MockRegistryService {
	return &MockRegistryService{}
}

func (m *MockRegistryService) Put(ctx context.Context, uploader domain.Principal, hash domain.FileHash, pointer string, signature []byte, hasLock bool, latMicro, lonMicro int32, radiusMeters uint32) (domain.FileRecord, error) {
	args := m.Called(ctx, uploader, hash, pointer, signature, hasLock, latMicro, lonMicro, radiusMeters)
	return args.Get(0).(domain.FileRecord), args.Error(1)
}

func (m *MockRegistryService) Get(ctx context.Context, hash domain.FileHash) (domain.FileRecord, bool, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(domain.FileRecord), args.Bool(1), args.Error(2)
}

func (m *MockRegistryService) Exists(ctx context.Context, hash domain.FileHash) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}
