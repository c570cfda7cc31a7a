package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type sqlGrantRepository struct {
	db SQLQuerier
}

// NewSqlGrantRepository creates sqlGrantRepository that implements port.GrantRepository
func NewSqlGrantRepository(db SQLQuerier) port.GrantRepository {
	return &sqlGrantRepository{
		db: db,
	}
}

// Set upserts the grant state for (hash, principal)
func (s *sqlGrantRepository) Set(ctx context.Context, hash domain.FileHash, principal domain.Principal, allowed bool) error {
	query := `INSERT INTO access_grants (file_hash, principal, allowed)
              VALUES ($1, $2, $3)
              ON CONFLICT (file_hash, principal) DO UPDATE SET allowed = EXCLUDED.allowed`

	_, err := s.db.ExecContext(ctx, query, hash[:], principal[:], allowed)
	if err != nil {
		return fmt.Errorf("error setting access grant: %w", err)
	}
	return nil
}

// Allowed reads the grant state for (hash, principal); absent rows read as false
func (s *sqlGrantRepository) Allowed(ctx context.Context, hash domain.FileHash, principal domain.Principal) (bool, error) {
	query := `SELECT allowed FROM access_grants WHERE file_hash = $1 AND principal = $2`

	var allowed bool
	err := s.db.QueryRowContext(ctx, query, hash[:], principal[:]).Scan(&allowed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error reading access grant: %w", err)
	}
	return allowed, nil
}
