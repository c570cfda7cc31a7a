package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/repository"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/registry"
)

func TestExists_ok(t *testing.T) {

	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	registryService := registry.NewRegistryService(mockUow, fixedClock(time.Now()))

	hash := testHash(0xaa)
	mockUow.GetRecordRepoMock().On("Exists", ctx, hash).Return(true, nil)

	// Act
	exists, err := registryService.Exists(ctx, hash)

	// Assert
	require.NoError(t, err)
	assert.True(t, exists)
	mockUow.GetRecordRepoMock().AssertExpectations(t)
}

func TestExists_ok_absent(t *testing.T) {

	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	registryService := registry.NewRegistryService(mockUow, fixedClock(time.Now()))

	hash := testHash(0xcc)
	mockUow.GetRecordRepoMock().On("Exists", ctx, hash).Return(false, nil)

	// Act
	exists, err := registryService.Exists(ctx, hash)

	// Assert
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists_ko(t *testing.T) {

	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	registryService := registry.NewRegistryService(mockUow, fixedClock(time.Now()))

	hash := testHash(0xaa)
	mockUow.GetRecordRepoMock().On("Exists", ctx, hash).Return(false, assert.AnError)

	// Act
	_, err := registryService.Exists(ctx, hash)

	// Assert
	require.ErrorIs(t, err, assert.AnError)
}
