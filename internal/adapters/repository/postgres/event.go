package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type sqlEventRepository struct {
	db SQLQuerier
}

// NewSqlEventRepository creates sqlEventRepository that implements port.EventRepository
func NewSqlEventRepository(db SQLQuerier) port.EventRepository {
	return &sqlEventRepository{
		db: db,
	}
}

const eventColumns = `seq, kind, file_hash, emitted_at, uploader, storage_pointer, signature,
                      has_location_lock, lock_lat_micro, lock_lon_micro, lock_radius_m, grantee`

// Append inserts an event and returns its assigned sequence
func (s *sqlEventRepository) Append(ctx context.Context, event domain.Event) (uint64, error) {
	query := `INSERT INTO provenance_events (kind, file_hash, emitted_at, uploader, storage_pointer, signature,
                                             has_location_lock, lock_lat_micro, lock_lon_micro, lock_radius_m, grantee)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING seq`

	args := []interface{}{string(event.Kind), event.FileHash[:], event.EmittedAt}
	if event.Kind == domain.EventUploaded {
		args = append(args,
			event.Uploader[:],
			event.StoragePointer,
			event.Signature,
			event.HasLocationLock,
			event.LockLatMicro,
			event.LockLonMicro,
			int64(event.LockRadiusMeters),
			nil,
		)
	} else {
		args = append(args, nil, nil, nil, nil, nil, nil, nil, event.Grantee[:])
	}

	var seq int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return 0, fmt.Errorf("error inserting provenance event: %w", err)
	}
	return uint64(seq), nil
}

// Query returns events inside the inclusive [from, to] window, most recent
// first, ties broken by descending sequence
func (s *sqlEventRepository) Query(ctx context.Context, from, to *time.Time, limit int) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
              FROM provenance_events
              WHERE ($1::timestamptz IS NULL OR emitted_at >= $1)
                AND ($2::timestamptz IS NULL OR emitted_at <= $2)
              ORDER BY emitted_at DESC, seq DESC
              LIMIT $3`

	rows, err := s.db.QueryContext(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying provenance events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// ListAfter returns events with seq greater than afterSeq in ascending order
func (s *sqlEventRepository) ListAfter(ctx context.Context, afterSeq uint64, limit int) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
              FROM provenance_events
              WHERE seq > $1
              ORDER BY seq ASC
              LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, int64(afterSeq), limit)
	if err != nil {
		return nil, fmt.Errorf("error listing provenance events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var dbEv dbEvent
		err := rows.Scan(
			&dbEv.Seq,
			&dbEv.Kind,
			&dbEv.FileHash,
			&dbEv.EmittedAt,
			&dbEv.Uploader,
			&dbEv.StoragePointer,
			&dbEv.Signature,
			&dbEv.HasLocationLock,
			&dbEv.LockLatMicro,
			&dbEv.LockLonMicro,
			&dbEv.LockRadiusM,
			&dbEv.Grantee,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning provenance event: %w", err)
		}
		events = append(events, dbEv.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provenance events: %w", err)
	}
	return events, nil
}

// dbEvent represents a provenance event row
type dbEvent struct {
	Seq             int64
	Kind            string
	FileHash        []byte
	EmittedAt       time.Time
	Uploader        []byte
	StoragePointer  sql.NullString
	Signature       []byte
	HasLocationLock sql.NullBool
	LockLatMicro    sql.NullInt32
	LockLonMicro    sql.NullInt32
	LockRadiusM     sql.NullInt64
	Grantee         []byte
}

// ToDomain converts to domain.Event
func (e *dbEvent) ToDomain() domain.Event {
	event := domain.Event{
		Seq:       uint64(e.Seq),
		Kind:      domain.EventKind(e.Kind),
		EmittedAt: e.EmittedAt.UTC(),
		Signature: e.Signature,
	}
	copy(event.FileHash[:], e.FileHash)
	copy(event.Uploader[:], e.Uploader)
	copy(event.Grantee[:], e.Grantee)

	if e.StoragePointer.Valid {
		event.StoragePointer = e.StoragePointer.String
	}
	if e.HasLocationLock.Valid {
		event.HasLocationLock = e.HasLocationLock.Bool
	}
	if e.LockLatMicro.Valid {
		event.LockLatMicro = e.LockLatMicro.Int32
	}
	if e.LockLonMicro.Valid {
		event.LockLonMicro = e.LockLonMicro.Int32
	}
	if e.LockRadiusM.Valid {
		event.LockRadiusMeters = uint32(e.LockRadiusM.Int64)
	}
	return event
}
