package access

import (
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type accessService struct {
	uow   port.UnitOfWork
	clock port.Clock
}

// NewAccessService creates a new access service
func NewAccessService(uow port.UnitOfWork, clock port.Clock) port.AccessService {
	return &accessService{uow: uow, clock: clock}
}
