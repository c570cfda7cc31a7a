package access

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// MockAccessService is a mock implementation of AccessService
type MockAccessService struct {
	mock.Mock
}

// NewMockAccessService creates a new MockAccessService
func NewMockAccessService() *MockAccessService {
	return &MockAccessService{}
}

func (m *MockAccessService) Grant(ctx context.Context, caller domain.Principal, hash domain.FileHash, grantee domain.Principal) error {
	args := m.Called(ctx, caller, hash, grantee)
	return args.Error(0)
}

func (m *MockAccessService) Revoke(ctx context.Context, caller domain.Principal, hash domain.FileHash, grantee domain.Principal) error {
	args := m.Called(ctx, caller, hash, grantee)
	return args.Error(0)
}

func (m *MockAccessService) CanAccess(ctx context.Context, hash domain.FileHash, principal domain.Principal) (bool, error) {
	args := m.Called(ctx, hash, principal)
	return args.Bool(0), args.Error(1)
}
