package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

type eventRepository struct {
	store *Store
	tx    *staged
}

func (e *eventRepository) Append(ctx context.Context, event domain.Event) (uint64, error) {
	if e.tx != nil {
		event.Seq = uint64(len(e.store.events)+len(e.tx.events)) + 1
		e.tx.events = append(e.tx.events, event.Clone())
		return event.Seq, nil
	}

	e.store.mu.Lock()
	defer e.store.mu.Unlock()

	event.Seq = uint64(len(e.store.events)) + 1
	e.store.events = append(e.store.events, event.Clone())
	return event.Seq, nil
}

func (e *eventRepository) Query(ctx context.Context, from, to *time.Time, limit int) ([]domain.Event, error) {
	if e.tx == nil {
		e.store.mu.RLock()
		defer e.store.mu.RUnlock()
	}

	log := e.store.events
	if e.tx != nil && len(e.tx.events) > 0 {
		log = append(append([]domain.Event(nil), e.store.events...), e.tx.events...)
	}

	matches := make([]domain.Event, 0)
	for _, event := range log {
		if from != nil && event.EmittedAt.Before(*from) {
			continue
		}
		if to != nil && event.EmittedAt.After(*to) {
			continue
		}
		matches = append(matches, event)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].EmittedAt.Equal(matches[j].EmittedAt) {
			return matches[i].EmittedAt.After(matches[j].EmittedAt)
		}
		return matches[i].Seq > matches[j].Seq
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]domain.Event, len(matches))
	for i, event := range matches {
		out[i] = event.Clone()
	}
	return out, nil
}

func (e *eventRepository) ListAfter(ctx context.Context, afterSeq uint64, limit int) ([]domain.Event, error) {
	if e.tx == nil {
		e.store.mu.RLock()
		defer e.store.mu.RUnlock()
	}

	log := e.store.events
	if e.tx != nil && len(e.tx.events) > 0 {
		log = append(append([]domain.Event(nil), e.store.events...), e.tx.events...)
	}

	out := make([]domain.Event, 0)
	for _, event := range log {
		if event.Seq <= afterSeq {
			continue
		}
		out = append(out, event.Clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
