package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type MockRecordRepository struct {
	mock.Mock
}

func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{}
}

func (m *MockRecordRepository) Create(ctx context.Context, record domain.FileRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) Find(ctx context.Context, hash domain.FileHash) (*domain.FileRecord, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockRecordRepository) Exists(ctx context.Context, hash domain.FileHash) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}

type MockGrantRepository struct {
	mock.Mock
}

func NewMockGrantRepository() *MockGrantRepository {
	return &MockGrantRepository{}
}

func (m *MockGrantRepository) Set(ctx context.Context, hash domain.FileHash, principal domain.Principal, allowed bool) error {
	args := m.Called(ctx, hash, principal, allowed)
	return args.Error(0)
}

func (m *MockGrantRepository) Allowed(ctx context.Context, hash domain.FileHash, principal domain.Principal) (bool, error) {
	args := m.Called(ctx, hash, principal)
	return args.Bool(0), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Append(ctx context.Context, event domain.Event) (uint64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockEventRepository) Query(ctx context.Context, from, to *time.Time, limit int) ([]domain.Event, error) {
	args := m.Called(ctx, from, to, limit)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListAfter(ctx context.Context, afterSeq uint64, limit int) ([]domain.Event, error) {
	args := m.Called(ctx, afterSeq, limit)
	return args.Get(0).([]domain.Event), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	recordRepo *MockRecordRepository
	grantRepo  *MockGrantRepository
	eventRepo  *MockEventRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		recordRepo: &MockRecordRepository{},
		grantRepo:  &MockGrantRepository{},
		eventRepo:  &MockEventRepository{},
	}
}

func (m *MockUnitOfWork) RecordRepo() port.RecordRepository {
	return m.recordRepo
}

func (m *MockUnitOfWork) GrantRepo() port.GrantRepository {
	return m.grantRepo
}

func (m *MockUnitOfWork) EventRepo() port.EventRepository {
	return m.eventRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetRecordRepoMock() *MockRecordRepository {
	return m.recordRepo
}

func (m *MockUnitOfWork) GetGrantRepoMock() *MockGrantRepository {
	return m.grantRepo
}

func (m *MockUnitOfWork) GetEventRepoMock() *MockEventRepository {
	return m.eventRepo
}
