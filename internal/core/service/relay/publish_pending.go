package relay

import (
	"context"
	"fmt"
)

// PublishPending forwards events appended since the last delivered sequence
// to the broker, in sequence order. On a publish failure the cursor stays on
// the last delivered event, so the next run resumes right after it.
func (r *relayService) PublishPending(ctx context.Context) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	published := 0
	for {
		events, err := r.uow.EventRepo().ListAfter(ctx, r.cursor, r.batchSize)
		if err != nil {
			return fmt.Errorf("could not list pending events: %w", err)
		}

		for _, event := range events {
			if err := r.publisher.Publish(ctx, event); err != nil {
				return fmt.Errorf("could not publish event %d: %w", event.Seq, err)
			}
			r.cursor = event.Seq
			published++
		}

		if len(events) < r.batchSize {
			break
		}
	}

	if published > 0 {
		r.logger.Info("relayed provenance events", "count", published, "cursor", r.cursor)
	}

	return nil
}
