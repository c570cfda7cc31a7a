package eventlog

import (
	"context"
	"time"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// Query returns events whose emission time falls inside the inclusive
// [from, to] window, most recent first. Nil bounds leave that side open.
// The same query over an unchanged log always returns the same slice.
func (e *eventLogService) Query(ctx context.Context, from, to *time.Time, limit int) ([]domain.Event, error) {

	if limit <= 0 || limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}

	events, err := e.uow.EventRepo().Query(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}

	return events, nil
}
