package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type sqlRecordRepository struct {
	db SQLQuerier
}

// NewSqlRecordRepository creates sqlRecordRepository that implements port.RecordRepository
func NewSqlRecordRepository(db SQLQuerier) port.RecordRepository {
	return &sqlRecordRepository{
		db: db,
	}
}

// Create inserts a write-once file record
func (s *sqlRecordRepository) Create(ctx context.Context, record domain.FileRecord) error {
	query := `INSERT INTO file_records (file_hash, uploader, storage_pointer, signature, recorded_at,
                                        has_location_lock, lock_lat_micro, lock_lon_micro, lock_radius_m)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		record.FileHash[:],
		record.Uploader[:],
		record.StoragePointer,
		record.Signature,
		record.Timestamp,
		record.HasLocationLock,
		record.LockLatMicro,
		record.LockLonMicro,
		int64(record.LockRadiusMeters),
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("record %s: %w", record.FileHash, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting file record: %w", err)
	}
	return nil
}

// Find finds a record by its content hash
func (s *sqlRecordRepository) Find(ctx context.Context, hash domain.FileHash) (*domain.FileRecord, error) {
	query := `SELECT file_hash, uploader, storage_pointer, signature, recorded_at,
                     has_location_lock, lock_lat_micro, lock_lon_micro, lock_radius_m
              FROM file_records
              WHERE file_hash = $1`

	var dbRecord dbFileRecord
	err := s.db.QueryRowContext(ctx, query, hash[:]).Scan(
		&dbRecord.FileHash,
		&dbRecord.Uploader,
		&dbRecord.StoragePointer,
		&dbRecord.Signature,
		&dbRecord.RecordedAt,
		&dbRecord.HasLocationLock,
		&dbRecord.LockLatMicro,
		&dbRecord.LockLonMicro,
		&dbRecord.LockRadiusM,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return dbRecord.ToDomain(), nil
}

// Exists reports whether a record is stored under hash
func (s *sqlRecordRepository) Exists(ctx context.Context, hash domain.FileHash) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM file_records WHERE file_hash = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, hash[:]).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking file record existence: %w", err)
	}
	return exists, nil
}

// dbFileRecord represents a file record row
type dbFileRecord struct {
	FileHash        []byte
	Uploader        []byte
	StoragePointer  string
	Signature       []byte
	RecordedAt      time.Time
	HasLocationLock bool
	LockLatMicro    int32
	LockLonMicro    int32
	LockRadiusM     int64
}

// ToDomain converts to domain.FileRecord
func (f *dbFileRecord) ToDomain() *domain.FileRecord {
	record := &domain.FileRecord{
		StoragePointer:   f.StoragePointer,
		Signature:        f.Signature,
		Timestamp:        f.RecordedAt.UTC(),
		HasLocationLock:  f.HasLocationLock,
		LockLatMicro:     f.LockLatMicro,
		LockLonMicro:     f.LockLonMicro,
		LockRadiusMeters: uint32(f.LockRadiusM),
	}
	copy(record.FileHash[:], f.FileHash)
	copy(record.Uploader[:], f.Uploader)
	return record
}
