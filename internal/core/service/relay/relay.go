package relay

import (
	"log/slog"
	"sync"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

const defaultBatchSize = 100

type relayService struct {
	uow       port.UnitOfWork
	publisher port.EventPublisher
	logger    *slog.Logger
	batchSize int

	mu     sync.Mutex
	cursor uint64
}

// NewRelayService creates a new relay service. The cursor starts at zero so
// a restarted process replays the whole log; the broker deduplicates on the
// event sequence.
func NewRelayService(uow port.UnitOfWork, publisher port.EventPublisher, logger *slog.Logger, batchSize int) port.RelayService {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &relayService{uow: uow, publisher: publisher, logger: logger, batchSize: batchSize}
}
