package memory

import (
	"context"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

type recordRepository struct {
	store *Store
	tx    *staged
}

func (r *recordRepository) Create(ctx context.Context, record domain.FileRecord) error {
	if r.tx != nil {
		if _, ok := r.tx.records[record.FileHash]; ok {
			return domain.ErrAlreadyExists
		}
		if _, ok := r.store.records[record.FileHash]; ok {
			return domain.ErrAlreadyExists
		}
		r.tx.records[record.FileHash] = record.Clone()
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.records[record.FileHash]; ok {
		return domain.ErrAlreadyExists
	}
	r.store.records[record.FileHash] = record.Clone()
	return nil
}

func (r *recordRepository) Find(ctx context.Context, hash domain.FileHash) (*domain.FileRecord, error) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}

	if r.tx != nil {
		if record, ok := r.tx.records[hash]; ok {
			found := record.Clone()
			return &found, nil
		}
	}

	record, ok := r.store.records[hash]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	found := record.Clone()
	return &found, nil
}

func (r *recordRepository) Exists(ctx context.Context, hash domain.FileHash) (bool, error) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}

	if r.tx != nil {
		if _, ok := r.tx.records[hash]; ok {
			return true, nil
		}
	}

	_, ok := r.store.records[hash]
	return ok, nil
}
