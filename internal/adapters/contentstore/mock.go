package contentstore

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

type MockContentStore struct {
	mock.Mock
}

func NewMockContentStore() *MockContentStore {
	return &MockContentStore{}
}

func (m *MockContentStore) Save(ctx context.Context, content io.Reader, size int64, contentType string) (domain.FileHash, string, error) {
	args := m.Called(ctx, content, size, contentType)
	return args.Get(0).(domain.FileHash), args.String(1), args.Error(2)
}

func (m *MockContentStore) PresignedDownload(ctx context.Context, pointer string) (string, *time.Time, error) {
	args := m.Called(ctx, pointer)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}
