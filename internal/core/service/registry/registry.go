package registry

import (
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type registryService struct {
	uow   port.UnitOfWork
	clock port.Clock
}

// NewRegistryService creates a new registry service
func NewRegistryService(uow port.UnitOfWork, clock port.Clock) port.RegistryService {
	return &registryService{uow: uow, clock: clock}
}
