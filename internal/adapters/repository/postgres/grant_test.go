package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/repository/postgres"
)

func TestSqlGrantRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	recordRepo := postgres.NewSqlRecordRepository(dbConnection)
	repo := postgres.NewSqlGrantRepository(dbConnection)

	hash := testHash(0xaa)
	grantee := testPrincipal(0x02)

	seedRecord := func(t *testing.T) {
		t.Helper()
		record := testRecord(hash, testPrincipal(0x01), time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
		require.NoError(t, recordRepo.Create(ctx, record))
	}

	t.Run("Set - Insert Then Read Back", func(t *testing.T) {
		// Arrange
		truncate()
		seedRecord(t)

		// Act
		err := repo.Set(ctx, hash, grantee, true)

		// Assert
		require.NoError(t, err)
		allowed, err := repo.Allowed(ctx, hash, grantee)
		require.NoError(t, err)
		require.True(t, allowed)
	})

	t.Run("Set - Upsert Flips Allowed", func(t *testing.T) {
		// Arrange
		truncate()
		seedRecord(t)
		require.NoError(t, repo.Set(ctx, hash, grantee, true))

		// Act: revoke, then grant again.
		require.NoError(t, repo.Set(ctx, hash, grantee, false))
		revoked, err := repo.Allowed(ctx, hash, grantee)
		require.NoError(t, err)

		require.NoError(t, repo.Set(ctx, hash, grantee, true))
		regranted, err := repo.Allowed(ctx, hash, grantee)
		require.NoError(t, err)

		// Assert
		require.False(t, revoked)
		require.True(t, regranted)
	})

	t.Run("Allowed - Absent Row Reads False", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		allowed, err := repo.Allowed(ctx, hash, grantee)

		// Assert
		require.NoError(t, err)
		require.False(t, allowed)
	})
}
