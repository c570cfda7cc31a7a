package eventlog

import (
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// MaxQueryLimit caps how many events a single query returns. Out-of-range
// limits fall back to it rather than erroring.
const MaxQueryLimit = 50

type eventLogService struct {
	uow port.UnitOfWork
}

// NewEventLogService creates a new event log service
func NewEventLogService(uow port.UnitOfWork) port.EventLogService {
	return &eventLogService{uow: uow}
}
