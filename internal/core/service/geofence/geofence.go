package geofence

import (
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type geofenceService struct {
	uow port.UnitOfWork
}

// NewGeofenceService creates a new geofence service
func NewGeofenceService(uow port.UnitOfWork) port.GeofenceService {
	return &geofenceService{uow: uow}
}
