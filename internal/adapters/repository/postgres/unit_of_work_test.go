package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/repository/postgres"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

func TestSqlUnitOfWork_Execute(t *testing.T) {

	//Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)
	recordRepo := postgres.NewSqlRecordRepository(dbConnection)
	grantRepo := postgres.NewSqlGrantRepository(dbConnection)
	eventRepo := postgres.NewSqlEventRepository(dbConnection)

	record := testRecord(testHash(0xaa), testPrincipal(0x01), time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))

	register := func(u port.UnitOfWork) error {
		if err := u.RecordRepo().Create(ctx, record); err != nil {
			return err
		}
		if err := u.GrantRepo().Set(ctx, record.FileHash, record.Uploader, true); err != nil {
			return err
		}
		_, err := u.EventRepo().Append(ctx, domain.NewUploadedEvent(record))
		return err
	}

	t.Run("Should commit when no error", func(t *testing.T) {
		defer truncate()

		//act
		err := uow.Execute(ctx, register)

		//assert
		require.NoError(t, err)

		found, err := recordRepo.Find(ctx, record.FileHash)
		require.NoError(t, err)
		require.Equal(t, record.FileHash, found.FileHash)

		allowed, err := grantRepo.Allowed(ctx, record.FileHash, record.Uploader)
		require.NoError(t, err)
		require.True(t, allowed)

		events, err := eventRepo.ListAfter(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, domain.EventUploaded, events[0].Kind)
	})

	t.Run("Should rollback when error occurs", func(t *testing.T) {

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := register(u); err != nil {
				return err
			}
			return assert.AnError
		})

		//assert
		require.ErrorIs(t, err, assert.AnError)

		_, err = recordRepo.Find(ctx, record.FileHash)
		require.ErrorIs(t, err, domain.ErrRecordNotFound)

		allowed, err := grantRepo.Allowed(ctx, record.FileHash, record.Uploader)
		require.NoError(t, err)
		require.False(t, allowed)

		events, err := eventRepo.ListAfter(ctx, 0, 10)
		require.NoError(t, err)
		require.Empty(t, events)
	})
}
