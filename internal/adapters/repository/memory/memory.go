package memory

import (
	"context"
	"sync"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// Store keeps every record, grant and event behind a single RWMutex. One
// writer runs at a time; readers share the lock and never observe a partial
// transition.
type Store struct {
	mu      sync.RWMutex
	records map[domain.FileHash]domain.FileRecord
	grants  map[grantKey]bool
	events  []domain.Event
}

type grantKey struct {
	hash      domain.FileHash
	principal domain.Principal
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		records: make(map[domain.FileHash]domain.FileRecord),
		grants:  make(map[grantKey]bool),
	}
}

// staged buffers the writes of one Execute until commit. Reads inside the
// transition see the overlay first, then the base store.
type staged struct {
	records map[domain.FileHash]domain.FileRecord
	grants  map[grantKey]bool
	events  []domain.Event
}

type memoryUnitOfWork struct {
	store *Store
	tx    *staged
}

// NewUnitOfWork wraps the store behind the UnitOfWork port.
func NewUnitOfWork(store *Store) port.UnitOfWork {
	return &memoryUnitOfWork{store: store}
}

func (u *memoryUnitOfWork) RecordRepo() port.RecordRepository {
	return &recordRepository{store: u.store, tx: u.tx}
}

func (u *memoryUnitOfWork) GrantRepo() port.GrantRepository {
	return &grantRepository{store: u.store, tx: u.tx}
}

func (u *memoryUnitOfWork) EventRepo() port.EventRepository {
	return &eventRepository{store: u.store, tx: u.tx}
}

func (u *memoryUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	if u.tx != nil {
		// Already inside a transition, join it.
		return fn(u)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	tx := &staged{
		records: make(map[domain.FileHash]domain.FileRecord),
		grants:  make(map[grantKey]bool),
	}
	uowWithTx := &memoryUnitOfWork{store: u.store, tx: tx}

	if err := fn(uowWithTx); err != nil {
		return err
	}

	for hash, record := range tx.records {
		u.store.records[hash] = record
	}
	for key, allowed := range tx.grants {
		u.store.grants[key] = allowed
	}
	u.store.events = append(u.store.events, tx.events...)

	return nil
}
