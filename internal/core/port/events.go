package port

import (
	"context"
	"time"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// EventRepository is an interface to define provenance event log interactions
type EventRepository interface {
	Append(ctx context.Context, event domain.Event) (uint64, error)
	Query(ctx context.Context, from, to *time.Time, limit int) ([]domain.Event, error)
	ListAfter(ctx context.Context, afterSeq uint64, limit int) ([]domain.Event, error)
}

// EventLogService is an interface to define provenance event queries
type EventLogService interface {
	Query(ctx context.Context, from, to *time.Time, limit int) ([]domain.Event, error)
}

// EventPublisher is an interface to define an outbound event broker (nats, kafka, ...)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// RelayService is an interface to define the relay that drains pending events to the broker
type RelayService interface {
	PublishPending(ctx context.Context) error
}
