package port

import (
	"context"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// GeofenceService is an interface to define location lock verification
type GeofenceService interface {
	Verify(ctx context.Context, hash domain.FileHash, latMicro, lonMicro int32) (bool, error)
}
