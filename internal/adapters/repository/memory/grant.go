package memory

import (
	"context"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

type grantRepository struct {
	store *Store
	tx    *staged
}

func (g *grantRepository) Set(ctx context.Context, hash domain.FileHash, principal domain.Principal, allowed bool) error {
	if g.tx != nil {
		g.tx.grants[grantKey{hash: hash, principal: principal}] = allowed
		return nil
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	g.store.grants[grantKey{hash: hash, principal: principal}] = allowed
	return nil
}

func (g *grantRepository) Allowed(ctx context.Context, hash domain.FileHash, principal domain.Principal) (bool, error) {
	if g.tx == nil {
		g.store.mu.RLock()
		defer g.store.mu.RUnlock()
	}

	key := grantKey{hash: hash, principal: principal}

	if g.tx != nil {
		if allowed, ok := g.tx.grants[key]; ok {
			return allowed, nil
		}
	}

	// Absent entries read as false.
	return g.store.grants[key], nil
}
